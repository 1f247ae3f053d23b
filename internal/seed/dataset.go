package seed

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"bookshop/internal/entity"

	"github.com/shopspring/decimal"
)

// Options controls the size and randomness of a generated dataset.
type Options struct {
	Seed    int64
	Authors int
	Books   int
}

func DefaultOptions() Options {
	return Options{Seed: 1, Authors: 30, Books: 200}
}

// Dataset is a complete bookshop: every id is assigned and every reference
// points inside the dataset.
type Dataset struct {
	Authors        []entity.Author
	Categories     []entity.Category
	Books          []entity.Book
	BookCategories []entity.BookCategory
}

var categoryNames = []string{
	"Science Fiction", "Drama", "Action", "Romance", "Mystery", "Poetry",
	"History", "Biography", "Horror", "Fantasy", "Comedy", "Travel",
}

var firstNames = []string{
	"George", "Jane", "Agatha", "Leo", "Virginia", "Ernest", "Toni", "Mark",
	"Ursula", "Isaac", "Mary", "Oscar", "Harper", "Jack", "Sylvia", "Ray",
}

var lastNames = []string{
	"Powell", "Austen", "Christie", "Tolstoy", "Woolf", "Hemingway", "Morrison",
	"Twain", "Le Guin", "Asimov", "Shelley", "Wilde", "Lee", "London", "Plath",
	"Bradbury", "Porter", "Pope", "Ross", "Green",
}

var titleWords = []string{
	"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
	"Love", "War", "Peace", "Nature", "History", "Future", "Past", "Reality",
	"Wisdom", "Life", "Light", "Darkness", "World", "Time", "Space", "Mind", "Soul",
}

// Generate builds a dataset from opts. The same options always produce the
// same dataset.
func Generate(opts Options) (*Dataset, error) {
	if opts.Authors <= 0 || opts.Books < 0 {
		return nil, errors.New("seed: need at least one author and a non-negative book count")
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	ds := &Dataset{}

	for i, name := range categoryNames {
		ds.Categories = append(ds.Categories, entity.Category{ID: i + 1, Name: name})
	}

	for i := 0; i < opts.Authors; i++ {
		a := entity.Author{
			ID:       i + 1,
			LastName: pick(rng, lastNames),
		}
		// Roughly one author in twelve is known by last name only.
		if rng.Intn(12) != 0 {
			a.FirstName = pick(rng, firstNames)
		}
		ds.Authors = append(ds.Authors, a)
	}

	for i := 0; i < opts.Books; i++ {
		b := entity.Book{
			ID:             i + 1,
			Title:          bookTitle(rng),
			Price:          decimal.New(int64(500+rng.Intn(5500)), -2),
			Copies:         1000 + rng.Intn(9000),
			AgeRestriction: entity.AgeRestriction(rng.Intn(len(entity.AgeRestrictions()))),
			EditionType:    entity.EditionType(rng.Intn(len(entity.EditionTypes()))),
			AuthorID:       1 + rng.Intn(opts.Authors),
		}
		b.Description = fmt.Sprintf("A story about %s and %s.", strings.ToLower(pick(rng, titleWords)), strings.ToLower(pick(rng, titleWords)))
		if rng.Intn(20) != 0 {
			d := time.Date(1980+rng.Intn(45), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
			b.ReleaseDate = &d
		}
		ds.Books = append(ds.Books, b)

		for _, c := range rng.Perm(len(ds.Categories))[:1+rng.Intn(3)] {
			ds.BookCategories = append(ds.BookCategories, entity.BookCategory{BookID: b.ID, CategoryID: c + 1})
		}
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// Validate checks every row and every reference between rows.
func (ds *Dataset) Validate() error {
	authors := make(map[int]bool, len(ds.Authors))
	for _, a := range ds.Authors {
		if err := entity.Validate(a); err != nil {
			return fmt.Errorf("author %d: %w", a.ID, err)
		}
		authors[a.ID] = true
	}

	categories := make(map[int]bool, len(ds.Categories))
	for _, c := range ds.Categories {
		if err := entity.Validate(c); err != nil {
			return fmt.Errorf("category %d: %w", c.ID, err)
		}
		categories[c.ID] = true
	}

	books := make(map[int]bool, len(ds.Books))
	for _, b := range ds.Books {
		if err := entity.Validate(b); err != nil {
			return fmt.Errorf("book %d: %w", b.ID, err)
		}
		if !authors[b.AuthorID] {
			return fmt.Errorf("book %d: unknown author %d", b.ID, b.AuthorID)
		}
		books[b.ID] = true
	}

	links := make(map[entity.BookCategory]bool, len(ds.BookCategories))
	for _, bc := range ds.BookCategories {
		if err := entity.Validate(bc); err != nil {
			return err
		}
		if !books[bc.BookID] || !categories[bc.CategoryID] {
			return fmt.Errorf("book %d category %d: dangling link", bc.BookID, bc.CategoryID)
		}
		if links[bc] {
			return fmt.Errorf("book %d category %d: duplicate link", bc.BookID, bc.CategoryID)
		}
		links[bc] = true
	}
	return nil
}

func bookTitle(rng *rand.Rand) string {
	switch rng.Intn(3) {
	case 0:
		return "The " + pick(rng, titleWords)
	case 1:
		return pick(rng, titleWords) + " of " + pick(rng, titleWords)
	default:
		return "A " + pick(rng, titleWords) + " in the " + pick(rng, titleWords)
	}
}

func pick(rng *rand.Rand, words []string) string {
	return words[rng.Intn(len(words))]
}
