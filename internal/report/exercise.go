package report

import (
	"context"
	"strconv"
)

// Exercise is a named report or mutation runnable from the command line or HTTP.
type Exercise struct {
	Name string

	// NeedsInput is set when Run reads a line of user input.
	NeedsInput bool

	// Mutates is set for exercises that change data.
	Mutates bool

	Run func(ctx context.Context, svc *Service, input string) (string, error)
}

// Exercises lists every exercise in catalog order.
var Exercises = []Exercise{
	{Name: "books-by-age-restriction", NeedsInput: true, Run: func(ctx context.Context, svc *Service, input string) (string, error) {
		return svc.BooksByAgeRestriction(ctx, input)
	}},
	{Name: "golden-books", Run: func(ctx context.Context, svc *Service, _ string) (string, error) {
		return svc.GoldenBooks(ctx)
	}},
	{Name: "books-by-price", Run: func(ctx context.Context, svc *Service, _ string) (string, error) {
		return svc.BooksByPrice(ctx)
	}},
	{Name: "books-not-released-in", NeedsInput: true, Run: func(ctx context.Context, svc *Service, input string) (string, error) {
		year, err := parseInt(input)
		if err != nil {
			return "", err
		}
		return svc.BooksNotReleasedIn(ctx, year)
	}},
	{Name: "books-by-category", NeedsInput: true, Run: func(ctx context.Context, svc *Service, input string) (string, error) {
		return svc.BooksByCategory(ctx, input)
	}},
	{Name: "books-released-before", NeedsInput: true, Run: func(ctx context.Context, svc *Service, input string) (string, error) {
		return svc.BooksReleasedBefore(ctx, input)
	}},
	{Name: "author-names-ending-in", NeedsInput: true, Run: func(ctx context.Context, svc *Service, input string) (string, error) {
		return svc.AuthorNamesEndingIn(ctx, input)
	}},
	{Name: "book-titles-containing", NeedsInput: true, Run: func(ctx context.Context, svc *Service, input string) (string, error) {
		return svc.BookTitlesContaining(ctx, input)
	}},
	{Name: "books-by-author", NeedsInput: true, Run: func(ctx context.Context, svc *Service, input string) (string, error) {
		return svc.BooksByAuthor(ctx, input)
	}},
	{Name: "count-books", NeedsInput: true, Run: func(ctx context.Context, svc *Service, input string) (string, error) {
		length, err := parseInt(input)
		if err != nil {
			return "", err
		}
		n, err := svc.CountBooks(ctx, length)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	}},
	{Name: "copies-by-author", Run: func(ctx context.Context, svc *Service, _ string) (string, error) {
		return svc.CopiesByAuthor(ctx)
	}},
	{Name: "profit-by-category", Run: func(ctx context.Context, svc *Service, _ string) (string, error) {
		return svc.ProfitByCategory(ctx)
	}},
	{Name: "most-recent-books", Run: func(ctx context.Context, svc *Service, _ string) (string, error) {
		return svc.MostRecentBooks(ctx)
	}},
	{Name: "increase-prices", Mutates: true, Run: func(ctx context.Context, svc *Service, _ string) (string, error) {
		return "", svc.IncreasePrices(ctx)
	}},
	{Name: "remove-books", Mutates: true, Run: func(ctx context.Context, svc *Service, _ string) (string, error) {
		n, err := svc.RemoveBooks(ctx)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	}},
}

// Lookup finds an exercise by name.
func Lookup(name string) (Exercise, bool) {
	for _, e := range Exercises {
		if e.Name == name {
			return e, true
		}
	}
	return Exercise{}, false
}

func Names() []string {
	names := make([]string, 0, len(Exercises))
	for _, e := range Exercises {
		names = append(names, e.Name)
	}
	return names
}
