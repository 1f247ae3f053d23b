package report

import (
	"time"

	"bookshop/internal/entity"

	"github.com/shopspring/decimal"
)

// BookPrice is a row of the books-by-price report.
type BookPrice struct {
	Title string
	Price decimal.Decimal
}

// BookEdition is a row of the books-released-before report.
type BookEdition struct {
	Title       string
	EditionType entity.EditionType
	Price       decimal.Decimal
	ReleaseDate time.Time
}

// AuthorName is a row of the author-names report.
type AuthorName struct {
	FirstName string
	LastName  string
}

func (a AuthorName) FullName() string {
	return entity.Author{FirstName: a.FirstName, LastName: a.LastName}.FullName()
}

// BookAuthor is a row of the books-by-author report.
type BookAuthor struct {
	BookID     int
	Title      string
	AuthorName string
}

// AuthorCopies is a row of the copies-by-author report.
type AuthorCopies struct {
	FullName    string
	TotalCopies int64
}

// CategoryProfit is a row of the profit-by-category report.
type CategoryProfit struct {
	Name   string
	Profit decimal.Decimal
}

// RecentBook is one of the latest releases of a category. ReleaseDate is nil
// when the book has no release date.
type RecentBook struct {
	Title       string
	ReleaseDate *time.Time
}

// CategoryRecentBooks groups the latest releases of one category.
type CategoryRecentBooks struct {
	Name  string
	Books []RecentBook
}
