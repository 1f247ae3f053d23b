package seed

import (
	"context"
	"fmt"

	"bookshop/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const truncateSQL = `TRUNCATE books_categories, books, categories, authors RESTART IDENTITY CASCADE`

// Identity columns restart after the highest loaded id.
var identities = []struct{ table, column string }{
	{"authors", "author_id"},
	{"categories", "category_id"},
	{"books", "book_id"},
}

// Loader replaces the database contents with a Dataset.
type Loader struct {
	db *pgxpool.Pool
}

func NewLoader(db *pgxpool.Pool) *Loader {
	return &Loader{db: db}
}

// Reset removes every row and restarts the identity sequences.
func (l *Loader) Reset(ctx context.Context) error {
	if _, err := l.db.Exec(ctx, truncateSQL); err != nil {
		return fmt.Errorf("reset database: %w", err)
	}
	return nil
}

// Load resets the database and copies ds into it in one transaction.
func (l *Loader) Load(ctx context.Context, ds *Dataset) error {
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	err := database.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, truncateSQL); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}

		if err := copyRows(ctx, tx, "authors", []string{"author_id", "first_name", "last_name"}, len(ds.Authors), func(i int) []any {
			a := ds.Authors[i]
			var first *string
			if a.FirstName != "" {
				first = &a.FirstName
			}
			return []any{int32(a.ID), first, a.LastName}
		}); err != nil {
			return err
		}

		if err := copyRows(ctx, tx, "categories", []string{"category_id", "name"}, len(ds.Categories), func(i int) []any {
			c := ds.Categories[i]
			return []any{int32(c.ID), c.Name}
		}); err != nil {
			return err
		}

		bookColumns := []string{"book_id", "title", "description", "release_date", "copies", "price", "edition_type", "age_restriction", "author_id"}
		if err := copyRows(ctx, tx, "books", bookColumns, len(ds.Books), func(i int) []any {
			b := ds.Books[i]
			return []any{
				int32(b.ID),
				b.Title,
				b.Description,
				b.ReleaseDate,
				int32(b.Copies),
				database.Numeric(b.Price),
				int16(b.EditionType),
				int16(b.AgeRestriction),
				int32(b.AuthorID),
			}
		}); err != nil {
			return err
		}

		if err := copyRows(ctx, tx, "books_categories", []string{"book_id", "category_id"}, len(ds.BookCategories), func(i int) []any {
			bc := ds.BookCategories[i]
			return []any{int32(bc.BookID), int32(bc.CategoryID)}
		}); err != nil {
			return err
		}

		for _, id := range identities {
			sql := fmt.Sprintf(
				`SELECT setval(pg_get_serial_sequence('%[1]s', '%[2]s'), COALESCE(MAX(%[2]s), 1), MAX(%[2]s) IS NOT NULL) FROM %[1]s`,
				id.table, id.column,
			)
			if _, err := tx.Exec(ctx, sql); err != nil {
				return fmt.Errorf("restart %s identity: %w", id.table, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("authors", len(ds.Authors)).
		Int("categories", len(ds.Categories)).
		Int("books", len(ds.Books)).
		Int("book_categories", len(ds.BookCategories)).
		Msg("dataset loaded")
	return nil
}

func copyRows(ctx context.Context, tx pgx.Tx, table string, columns []string, n int, row func(i int) []any) error {
	copied, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromSlice(n, func(i int) ([]any, error) {
		return row(i), nil
	}))
	if err != nil {
		return fmt.Errorf("copy %s: %w", table, err)
	}
	if copied != int64(n) {
		return fmt.Errorf("copy %s: expected %d rows, copied %d", table, n, copied)
	}
	return nil
}
