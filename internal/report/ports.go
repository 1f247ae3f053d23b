package report

import (
	"context"
	"time"

	"bookshop/internal/entity"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks bookshop/internal/report Repository

// Repository defines the queries and bulk mutations the reports run against.
type Repository interface {
	TitlesByAgeRestriction(ctx context.Context, restriction entity.AgeRestriction) ([]string, error)
	TitlesByEditionBelowCopies(ctx context.Context, edition entity.EditionType, copies int) ([]string, error)
	BooksPricedAbove(ctx context.Context, price decimal.Decimal) ([]BookPrice, error)
	TitlesNotReleasedIn(ctx context.Context, year int) ([]string, error)
	TitlesInCategories(ctx context.Context, categories []string) ([]string, error)
	BooksReleasedBefore(ctx context.Context, date time.Time) ([]BookEdition, error)
	AuthorsByFirstNameSuffix(ctx context.Context, suffix string) ([]AuthorName, error)
	TitlesContaining(ctx context.Context, substr string) ([]string, error)
	BooksByAuthorLastNamePrefix(ctx context.Context, prefix string) ([]BookAuthor, error)
	CountTitlesLongerThan(ctx context.Context, length int) (int, error)
	CopiesByAuthor(ctx context.Context) ([]AuthorCopies, error)
	ProfitByCategory(ctx context.Context) ([]CategoryProfit, error)
	RecentBooksByCategory(ctx context.Context, perCategory int) ([]CategoryRecentBooks, error)

	// IncreasePricesReleasedBefore adds delta to the price of every book
	// released before January 1st of year and returns the number of books changed.
	IncreasePricesReleasedBefore(ctx context.Context, year int, delta decimal.Decimal) (int, error)
	// RemoveBooksWithCopiesBelow deletes every book with fewer than copies
	// copies and returns how many matched before the delete.
	RemoveBooksWithCopiesBelow(ctx context.Context, copies int) (int, error)
}
