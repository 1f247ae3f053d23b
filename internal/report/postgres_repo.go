package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshop/internal/database"
	"bookshop/internal/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ErrRemovedCountMismatch means the delete touched a different number of rows
// than were counted beforehand; the transaction is rolled back.
var ErrRemovedCountMismatch = errors.New("removed row count does not match selected count")

// Text is ordered case-insensitively, then by the exact text in the "C"
// collation so results do not depend on the server locale.
const (
	titlesByAgeRestrictionSQL = `
		SELECT title
		FROM books
		WHERE age_restriction = $1
		ORDER BY lower(title) COLLATE "C", title COLLATE "C", book_id`

	titlesByEditionBelowCopiesSQL = `
		SELECT title
		FROM books
		WHERE edition_type = $1 AND copies < $2
		ORDER BY book_id`

	booksPricedAboveSQL = `
		SELECT title, price
		FROM books
		WHERE price > $1
		ORDER BY price DESC, book_id`

	titlesNotReleasedInSQL = `
		SELECT title
		FROM books
		WHERE release_date IS NOT NULL
		  AND EXTRACT(YEAR FROM release_date)::int <> $1
		ORDER BY book_id`

	titlesInCategoriesSQL = `
		SELECT b.title
		FROM books b
		WHERE EXISTS (
			SELECT 1
			FROM books_categories bc
			JOIN categories c ON c.category_id = bc.category_id
			WHERE bc.book_id = b.book_id
			  AND lower(c.name) = ANY($1)
		)
		ORDER BY lower(b.title) COLLATE "C", b.title COLLATE "C", b.book_id`

	booksReleasedBeforeSQL = `
		SELECT title, edition_type, price, release_date
		FROM books
		WHERE release_date < $1
		ORDER BY release_date DESC, book_id`

	authorsByFirstNameSuffixSQL = `
		SELECT COALESCE(first_name, ''), last_name
		FROM authors
		WHERE right(COALESCE(first_name, ''), char_length($1)) = $1
		ORDER BY lower(COALESCE(first_name, '') || ' ' || last_name) COLLATE "C",
		         (COALESCE(first_name, '') || ' ' || last_name) COLLATE "C",
		         author_id`

	titlesContainingSQL = `
		SELECT title
		FROM books
		WHERE strpos(lower(title), lower($1)) > 0
		ORDER BY lower(title) COLLATE "C", title COLLATE "C", book_id`

	booksByAuthorLastNamePrefixSQL = `
		SELECT b.book_id, b.title, COALESCE(a.first_name, '') || ' ' || a.last_name
		FROM books b
		JOIN authors a ON a.author_id = b.author_id
		WHERE starts_with(lower(a.last_name), lower($1))
		ORDER BY b.book_id`

	countTitlesLongerThanSQL = `
		SELECT COUNT(*)
		FROM books
		WHERE char_length(title) > $1`

	copiesByAuthorSQL = `
		SELECT COALESCE(a.first_name, '') || ' ' || a.last_name, COALESCE(SUM(b.copies), 0)
		FROM authors a
		LEFT JOIN books b ON b.author_id = a.author_id
		GROUP BY a.author_id, a.first_name, a.last_name
		ORDER BY 2 DESC, a.author_id`

	profitByCategorySQL = `
		SELECT c.name, COALESCE(SUM(b.copies * b.price), 0)
		FROM categories c
		LEFT JOIN books_categories bc ON bc.category_id = c.category_id
		LEFT JOIN books b ON b.book_id = bc.book_id
		GROUP BY c.category_id, c.name
		ORDER BY 2 DESC, c.category_id`

	recentBooksByCategorySQL = `
		SELECT c.category_id, c.name, r.title, r.release_date
		FROM categories c
		LEFT JOIN LATERAL (
			SELECT b.book_id, b.title, b.release_date
			FROM books b
			JOIN books_categories bc ON bc.book_id = b.book_id
			WHERE bc.category_id = c.category_id
			ORDER BY b.release_date DESC NULLS LAST, b.book_id
			LIMIT $1
		) r ON true
		ORDER BY lower(c.name) COLLATE "C", c.name COLLATE "C", c.category_id,
		         r.release_date DESC NULLS LAST, r.book_id`

	selectPricesBeforeSQL = `
		SELECT book_id, price
		FROM books
		WHERE release_date < make_date($1, 1, 1)
		ORDER BY book_id
		FOR UPDATE`

	updatePriceSQL = `UPDATE books SET price = $1 WHERE book_id = $2`

	countCopiesBelowSQL  = `SELECT COUNT(*) FROM books WHERE copies < $1`
	deleteCopiesBelowSQL = `DELETE FROM books WHERE copies < $1`
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) queryTitles(ctx context.Context, sql string, args ...any) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (r *PostgresRepo) TitlesByAgeRestriction(ctx context.Context, restriction entity.AgeRestriction) ([]string, error) {
	return r.queryTitles(ctx, titlesByAgeRestrictionSQL, int16(restriction))
}

func (r *PostgresRepo) TitlesByEditionBelowCopies(ctx context.Context, edition entity.EditionType, copies int) ([]string, error) {
	return r.queryTitles(ctx, titlesByEditionBelowCopiesSQL, int16(edition), copies)
}

func (r *PostgresRepo) BooksPricedAbove(ctx context.Context, price decimal.Decimal) ([]BookPrice, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, booksPricedAboveSQL, database.Numeric(price))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BookPrice
	for rows.Next() {
		var b BookPrice
		if err := rows.Scan(&b.Title, &b.Price); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) TitlesNotReleasedIn(ctx context.Context, year int) ([]string, error) {
	return r.queryTitles(ctx, titlesNotReleasedInSQL, year)
}

func (r *PostgresRepo) TitlesInCategories(ctx context.Context, categories []string) ([]string, error) {
	return r.queryTitles(ctx, titlesInCategoriesSQL, categories)
}

func (r *PostgresRepo) BooksReleasedBefore(ctx context.Context, date time.Time) ([]BookEdition, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, booksReleasedBeforeSQL, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BookEdition
	for rows.Next() {
		var (
			b       BookEdition
			edition int16
		)
		if err := rows.Scan(&b.Title, &edition, &b.Price, &b.ReleaseDate); err != nil {
			return nil, err
		}
		b.EditionType = entity.EditionType(edition)
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) AuthorsByFirstNameSuffix(ctx context.Context, suffix string) ([]AuthorName, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, authorsByFirstNameSuffixSQL, suffix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AuthorName
	for rows.Next() {
		var a AuthorName
		if err := rows.Scan(&a.FirstName, &a.LastName); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) TitlesContaining(ctx context.Context, substr string) ([]string, error) {
	return r.queryTitles(ctx, titlesContainingSQL, substr)
}

func (r *PostgresRepo) BooksByAuthorLastNamePrefix(ctx context.Context, prefix string) ([]BookAuthor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, booksByAuthorLastNamePrefixSQL, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BookAuthor
	for rows.Next() {
		var b BookAuthor
		if err := rows.Scan(&b.BookID, &b.Title, &b.AuthorName); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) CountTitlesLongerThan(ctx context.Context, length int) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var n int
	err := r.db.QueryRow(ctx, countTitlesLongerThanSQL, length).Scan(&n)
	return n, err
}

func (r *PostgresRepo) CopiesByAuthor(ctx context.Context) ([]AuthorCopies, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, copiesByAuthorSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AuthorCopies
	for rows.Next() {
		var a AuthorCopies
		if err := rows.Scan(&a.FullName, &a.TotalCopies); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ProfitByCategory(ctx context.Context) ([]CategoryProfit, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, profitByCategorySQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryProfit
	for rows.Next() {
		var c CategoryProfit
		if err := rows.Scan(&c.Name, &c.Profit); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) RecentBooksByCategory(ctx context.Context, perCategory int) ([]CategoryRecentBooks, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, recentBooksByCategorySQL, perCategory)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		out    []CategoryRecentBooks
		lastID int
	)
	for rows.Next() {
		var (
			categoryID int
			name       string
			title      *string
			released   *time.Time
		)
		if err := rows.Scan(&categoryID, &name, &title, &released); err != nil {
			return nil, err
		}
		if len(out) == 0 || categoryID != lastID {
			out = append(out, CategoryRecentBooks{Name: name})
			lastID = categoryID
		}
		// A category without books comes back as one row with a NULL title.
		if title != nil {
			cur := &out[len(out)-1]
			cur.Books = append(cur.Books, RecentBook{Title: *title, ReleaseDate: released})
		}
	}
	return out, rows.Err()
}

func (r *PostgresRepo) IncreasePricesReleasedBefore(ctx context.Context, year int, delta decimal.Decimal) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (int, error) {
		rows, err := tx.Query(ctx, selectPricesBeforeSQL, year)
		if err != nil {
			return 0, fmt.Errorf("select books: %w", err)
		}

		type bookPrice struct {
			id    int
			price decimal.Decimal
		}
		targets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (bookPrice, error) {
			var bp bookPrice
			err := row.Scan(&bp.id, &bp.price)
			return bp, err
		})
		if err != nil {
			return 0, fmt.Errorf("scan books: %w", err)
		}
		if len(targets) == 0 {
			return 0, nil
		}

		batch := &pgx.Batch{}
		for _, t := range targets {
			batch.Queue(updatePriceSQL, database.Numeric(t.price.Add(delta)), t.id)
		}
		br := tx.SendBatch(ctx, batch)
		for range targets {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return 0, fmt.Errorf("update price: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return 0, fmt.Errorf("update prices: %w", err)
		}
		return len(targets), nil
	})
}

func (r *PostgresRepo) RemoveBooksWithCopiesBelow(ctx context.Context, copies int) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (int, error) {
		var count int
		if err := tx.QueryRow(ctx, countCopiesBelowSQL, copies).Scan(&count); err != nil {
			return 0, fmt.Errorf("count books: %w", err)
		}

		tag, err := tx.Exec(ctx, deleteCopiesBelowSQL, copies)
		if err != nil {
			return 0, fmt.Errorf("delete books: %w", err)
		}
		if tag.RowsAffected() != int64(count) {
			return 0, fmt.Errorf("%w: counted %d, deleted %d", ErrRemovedCountMismatch, count, tag.RowsAffected())
		}
		return count, nil
	})
}
