package report

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bookshop/internal/entity"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	GoldenBookMaxCopies    = 5000
	ExpensiveBookPrice     = 40
	ReleaseDateLayout      = "02-01-2006"
	RecentBooksPerCategory = 3
	PriceIncreaseBefore    = 2010
	PriceIncreaseAmount    = 5
	LowStockCopies         = 4200
)

// ErrMissingReleaseDate is returned when a report needs the release date of a
// book that has none.
var ErrMissingReleaseDate = errors.New("book has no release date")

// Service renders the bookshop reports as newline separated text.
type Service struct {
	repo Repository
}

// NewService creates a new report service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// BooksByAgeRestriction lists the titles allowed for the given restriction.
// An unknown restriction is not an error: the returned text says so.
func (s *Service) BooksByAgeRestriction(ctx context.Context, command string) (string, error) {
	restriction, ok := entity.ParseAgeRestriction(command)
	if !ok {
		return fmt.Sprintf("%s is not a valid age restriction", command), nil
	}

	titles, err := s.repo.TitlesByAgeRestriction(ctx, restriction)
	if err != nil {
		return "", fmt.Errorf("books by age restriction: %w", err)
	}
	return joinLines(titles), nil
}

// GoldenBooks lists gold edition titles with fewer than 5000 copies.
func (s *Service) GoldenBooks(ctx context.Context) (string, error) {
	titles, err := s.repo.TitlesByEditionBelowCopies(ctx, entity.EditionGold, GoldenBookMaxCopies)
	if err != nil {
		return "", fmt.Errorf("golden books: %w", err)
	}
	return joinLines(titles), nil
}

// BooksByPrice lists books priced above 40, most expensive first.
func (s *Service) BooksByPrice(ctx context.Context) (string, error) {
	books, err := s.repo.BooksPricedAbove(ctx, decimal.NewFromInt(ExpensiveBookPrice))
	if err != nil {
		return "", fmt.Errorf("books by price: %w", err)
	}

	lines := make([]string, 0, len(books))
	for _, b := range books {
		lines = append(lines, fmt.Sprintf("%s - %s", b.Title, money(b.Price)))
	}
	return joinLines(lines), nil
}

// BooksNotReleasedIn lists books with a release date outside year.
func (s *Service) BooksNotReleasedIn(ctx context.Context, year int) (string, error) {
	titles, err := s.repo.TitlesNotReleasedIn(ctx, year)
	if err != nil {
		return "", fmt.Errorf("books not released in %d: %w", year, err)
	}
	return joinLines(titles), nil
}

// BooksByCategory lists books in any of the whitespace separated categories.
func (s *Service) BooksByCategory(ctx context.Context, input string) (string, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", nil
	}

	categories := make([]string, 0, len(fields))
	for _, f := range fields {
		categories = append(categories, strings.ToLower(f))
	}

	titles, err := s.repo.TitlesInCategories(ctx, categories)
	if err != nil {
		return "", fmt.Errorf("books by category: %w", err)
	}
	return joinLines(titles), nil
}

// BooksReleasedBefore lists books released before a dd-MM-yyyy date, latest first.
func (s *Service) BooksReleasedBefore(ctx context.Context, date string) (string, error) {
	before, err := time.Parse(ReleaseDateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", fmt.Errorf("parse release date %q: %w", date, err)
	}

	books, err := s.repo.BooksReleasedBefore(ctx, before)
	if err != nil {
		return "", fmt.Errorf("books released before: %w", err)
	}

	lines := make([]string, 0, len(books))
	for _, b := range books {
		lines = append(lines, fmt.Sprintf("%s - %s - %s", b.Title, b.EditionType, money(b.Price)))
	}
	return joinLines(lines), nil
}

// AuthorNamesEndingIn lists authors whose first name ends with suffix.
func (s *Service) AuthorNamesEndingIn(ctx context.Context, suffix string) (string, error) {
	authors, err := s.repo.AuthorsByFirstNameSuffix(ctx, suffix)
	if err != nil {
		return "", fmt.Errorf("author names ending in %q: %w", suffix, err)
	}

	lines := make([]string, 0, len(authors))
	for _, a := range authors {
		lines = append(lines, a.FullName())
	}
	return joinLines(lines), nil
}

// BookTitlesContaining lists titles containing input, ignoring case.
func (s *Service) BookTitlesContaining(ctx context.Context, input string) (string, error) {
	titles, err := s.repo.TitlesContaining(ctx, input)
	if err != nil {
		return "", fmt.Errorf("book titles containing %q: %w", input, err)
	}
	return joinLines(titles), nil
}

// BooksByAuthor lists books whose author's last name starts with prefix.
func (s *Service) BooksByAuthor(ctx context.Context, prefix string) (string, error) {
	books, err := s.repo.BooksByAuthorLastNamePrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("books by author %q: %w", prefix, err)
	}

	lines := make([]string, 0, len(books))
	for _, b := range books {
		lines = append(lines, fmt.Sprintf("%s (%s)", b.Title, b.AuthorName))
	}
	return joinLines(lines), nil
}

// CountBooks returns how many titles are longer than length characters.
func (s *Service) CountBooks(ctx context.Context, length int) (int, error) {
	n, err := s.repo.CountTitlesLongerThan(ctx, length)
	if err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return n, nil
}

// CopiesByAuthor lists every author with their total copies, highest first.
func (s *Service) CopiesByAuthor(ctx context.Context) (string, error) {
	authors, err := s.repo.CopiesByAuthor(ctx)
	if err != nil {
		return "", fmt.Errorf("copies by author: %w", err)
	}

	lines := make([]string, 0, len(authors))
	for _, a := range authors {
		lines = append(lines, fmt.Sprintf("%s - %d", a.FullName, a.TotalCopies))
	}
	return joinLines(lines), nil
}

// ProfitByCategory lists every category with the value of its stock, highest first.
func (s *Service) ProfitByCategory(ctx context.Context) (string, error) {
	categories, err := s.repo.ProfitByCategory(ctx)
	if err != nil {
		return "", fmt.Errorf("profit by category: %w", err)
	}

	lines := make([]string, 0, len(categories))
	for _, c := range categories {
		lines = append(lines, fmt.Sprintf("%s %s", c.Name, money(c.Profit)))
	}
	return joinLines(lines), nil
}

// MostRecentBooks lists the three latest books of every category.
func (s *Service) MostRecentBooks(ctx context.Context) (string, error) {
	categories, err := s.repo.RecentBooksByCategory(ctx, RecentBooksPerCategory)
	if err != nil {
		return "", fmt.Errorf("most recent books: %w", err)
	}

	var lines []string
	for _, c := range categories {
		lines = append(lines, "--"+c.Name)
		for _, b := range c.Books {
			if b.ReleaseDate == nil {
				return "", fmt.Errorf("most recent books: %q in %q: %w", b.Title, c.Name, ErrMissingReleaseDate)
			}
			lines = append(lines, fmt.Sprintf("%s (%d)", b.Title, b.ReleaseDate.Year()))
		}
	}
	return joinLines(lines), nil
}

// IncreasePrices adds 5 to the price of every book released before 2010.
// Calling it twice raises prices twice.
func (s *Service) IncreasePrices(ctx context.Context) error {
	n, err := s.repo.IncreasePricesReleasedBefore(ctx, PriceIncreaseBefore, decimal.NewFromInt(PriceIncreaseAmount))
	if err != nil {
		return fmt.Errorf("increase prices: %w", err)
	}
	log.Info().Int("books", n).Int("before_year", PriceIncreaseBefore).Msg("prices increased")
	return nil
}

// RemoveBooks deletes books with fewer than 4200 copies and returns how many
// were removed.
func (s *Service) RemoveBooks(ctx context.Context) (int, error) {
	n, err := s.repo.RemoveBooksWithCopiesBelow(ctx, LowStockCopies)
	if err != nil {
		return 0, fmt.Errorf("remove books: %w", err)
	}
	log.Info().Int("books", n).Int("copies_below", LowStockCopies).Msg("books removed")
	return n, nil
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// parseInt is used by exercises that read a number from their input line.
func parseInt(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", input, err)
	}
	return n, nil
}
