package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookshop/internal/entity"
	"bookshop/internal/report"
	"bookshop/internal/report/mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDB = errors.New("db error")

func newTestService(t *testing.T) (*report.Service, *mocks.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := mocks.NewMockRepository(ctrl)
	return report.NewService(mockRepo), mockRepo
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_BooksByAgeRestriction(t *testing.T) {
	ctx := context.Background()

	t.Run("matches name ignoring case", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().TitlesByAgeRestriction(gomock.Any(), entity.AgeRestrictionTeen).
			Return([]string{"A Tale", "B Story"}, nil)

		out, err := svc.BooksByAgeRestriction(ctx, " tEEn ")
		require.NoError(t, err)
		assert.Equal(t, "A Tale\nB Story", out)
	})

	t.Run("unknown restriction", func(t *testing.T) {
		svc, _ := newTestService(t)

		out, err := svc.BooksByAgeRestriction(ctx, "xyz")
		require.NoError(t, err)
		assert.Equal(t, "xyz is not a valid age restriction", out)
	})

	t.Run("numeric input is not a name", func(t *testing.T) {
		svc, _ := newTestService(t)

		out, err := svc.BooksByAgeRestriction(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "1 is not a valid age restriction", out)
	})

	t.Run("no books", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().TitlesByAgeRestriction(gomock.Any(), entity.AgeRestrictionAdult).Return(nil, nil)

		out, err := svc.BooksByAgeRestriction(ctx, "ADULT")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().TitlesByAgeRestriction(gomock.Any(), entity.AgeRestrictionMinor).Return(nil, errDB)

		_, err := svc.BooksByAgeRestriction(ctx, "minor")
		assert.ErrorIs(t, err, errDB)
	})
}

func TestService_GoldenBooks(t *testing.T) {
	svc, mockRepo := newTestService(t)
	mockRepo.EXPECT().TitlesByEditionBelowCopies(gomock.Any(), entity.EditionGold, 5000).
		Return([]string{"Second", "First"}, nil)

	out, err := svc.GoldenBooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Second\nFirst", out, "repository order is kept")
}

func TestService_BooksByPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("two decimals", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().BooksPricedAbove(gomock.Any(), decimal.NewFromInt(40)).Return([]report.BookPrice{
			{Title: "Tale", Price: decimal.NewFromInt(45)},
			{Title: "Saga", Price: decimal.RequireFromString("40.5")},
		}, nil)

		out, err := svc.BooksByPrice(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Tale - $45.00\nSaga - $40.50", out)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().BooksPricedAbove(gomock.Any(), gomock.Any()).Return(nil, errDB)

		_, err := svc.BooksByPrice(ctx)
		assert.ErrorIs(t, err, errDB)
	})
}

func TestService_BooksNotReleasedIn(t *testing.T) {
	svc, mockRepo := newTestService(t)
	mockRepo.EXPECT().TitlesNotReleasedIn(gomock.Any(), 2000).Return([]string{"One", "Two"}, nil)

	out, err := svc.BooksNotReleasedIn(context.Background(), 2000)
	require.NoError(t, err)
	assert.Equal(t, "One\nTwo", out)
}

func TestService_BooksByCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("lower cases every category", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().TitlesInCategories(gomock.Any(), []string{"horror", "mystery"}).
			Return([]string{"Dark", "Night"}, nil)

		out, err := svc.BooksByCategory(ctx, "  Horror\tMYSTERY ")
		require.NoError(t, err)
		assert.Equal(t, "Dark\nNight", out)
	})

	t.Run("blank input skips the query", func(t *testing.T) {
		svc, _ := newTestService(t)

		out, err := svc.BooksByCategory(ctx, "   ")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestService_BooksReleasedBefore(t *testing.T) {
	ctx := context.Background()

	t.Run("parses dd-MM-yyyy", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().BooksReleasedBefore(gomock.Any(), date(1992, time.April, 12)).Return([]report.BookEdition{
			{Title: "Late", EditionType: entity.EditionGold, Price: decimal.RequireFromString("12.3"), ReleaseDate: date(1991, 1, 1)},
			{Title: "Early", EditionType: entity.EditionNormal, Price: decimal.NewFromInt(7), ReleaseDate: date(1980, 1, 1)},
		}, nil)

		out, err := svc.BooksReleasedBefore(ctx, "12-04-1992\n")
		require.NoError(t, err)
		assert.Equal(t, "Late - Gold - $12.30\nEarly - Normal - $7.00", out)
	})

	t.Run("malformed date", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.BooksReleasedBefore(ctx, "1992-04-12")
		require.Error(t, err)
		var parseErr *time.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}

// The exercise is named after last names but filters on the first name.
func TestService_AuthorNamesEndingIn_FiltersFirstName(t *testing.T) {
	svc, mockRepo := newTestService(t)
	mockRepo.EXPECT().AuthorsByFirstNameSuffix(gomock.Any(), "e").Return([]report.AuthorName{
		{FirstName: "George", LastName: "Powell"},
		{FirstName: "", LastName: "Anonymous"},
	}, nil)

	out, err := svc.AuthorNamesEndingIn(context.Background(), "e")
	require.NoError(t, err)
	assert.Equal(t, "George Powell\n Anonymous", out)
}

func TestService_BookTitlesContaining(t *testing.T) {
	svc, mockRepo := newTestService(t)
	mockRepo.EXPECT().TitlesContaining(gomock.Any(), "WOR").Return([]string{"Brave New World"}, nil)

	out, err := svc.BookTitlesContaining(context.Background(), "WOR")
	require.NoError(t, err)
	assert.Equal(t, "Brave New World", out)
}

func TestService_BooksByAuthor(t *testing.T) {
	svc, mockRepo := newTestService(t)
	mockRepo.EXPECT().BooksByAuthorLastNamePrefix(gomock.Any(), "po").Return([]report.BookAuthor{
		{BookID: 1, Title: "Dune", AuthorName: "George Powell"},
		{BookID: 4, Title: "Emma", AuthorName: "Wanda Potter"},
	}, nil)

	out, err := svc.BooksByAuthor(context.Background(), "po")
	require.NoError(t, err)
	assert.Equal(t, "Dune (George Powell)\nEmma (Wanda Potter)", out)
}

func TestService_CountBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("count", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().CountTitlesLongerThan(gomock.Any(), 12).Return(6, nil)

		n, err := svc.CountBooks(ctx, 12)
		require.NoError(t, err)
		assert.Equal(t, 6, n)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().CountTitlesLongerThan(gomock.Any(), 40).Return(0, errDB)

		_, err := svc.CountBooks(ctx, 40)
		assert.ErrorIs(t, err, errDB)
	})
}

func TestService_CopiesByAuthor(t *testing.T) {
	svc, mockRepo := newTestService(t)
	mockRepo.EXPECT().CopiesByAuthor(gomock.Any()).Return([]report.AuthorCopies{
		{FullName: "Ann Lee", TotalCopies: 90000},
		{FullName: "Bob Ray", TotalCopies: 0},
	}, nil)

	out, err := svc.CopiesByAuthor(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee - 90000\nBob Ray - 0", out)
}

func TestService_ProfitByCategory(t *testing.T) {
	svc, mockRepo := newTestService(t)
	mockRepo.EXPECT().ProfitByCategory(gomock.Any()).Return([]report.CategoryProfit{
		{Name: "Drama", Profit: decimal.RequireFromString("1234567.891")},
		{Name: "Poetry", Profit: decimal.Zero},
	}, nil)

	out, err := svc.ProfitByCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Drama $1234567.89\nPoetry $0.00", out)
}

func TestService_MostRecentBooks(t *testing.T) {
	ctx := context.Background()
	released := func(y int) *time.Time {
		d := date(y, time.March, 1)
		return &d
	}

	t.Run("groups by category", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().RecentBooksByCategory(gomock.Any(), 3).Return([]report.CategoryRecentBooks{
			{Name: "Art", Books: []report.RecentBook{
				{Title: "New", ReleaseDate: released(2020)},
				{Title: "Old", ReleaseDate: released(1999)},
			}},
			{Name: "Empty"},
		}, nil)

		out, err := svc.MostRecentBooks(ctx)
		require.NoError(t, err)
		assert.Equal(t, "--Art\nNew (2020)\nOld (1999)\n--Empty", out)
	})

	t.Run("missing release date", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().RecentBooksByCategory(gomock.Any(), 3).Return([]report.CategoryRecentBooks{
			{Name: "Art", Books: []report.RecentBook{{Title: "Undated"}}},
		}, nil)

		_, err := svc.MostRecentBooks(ctx)
		assert.ErrorIs(t, err, report.ErrMissingReleaseDate)
	})
}

func TestService_IncreasePrices(t *testing.T) {
	ctx := context.Background()

	t.Run("adds five before 2010", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().IncreasePricesReleasedBefore(gomock.Any(), 2010, decimal.NewFromInt(5)).Return(3, nil)

		assert.NoError(t, svc.IncreasePrices(ctx))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().IncreasePricesReleasedBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errDB)

		assert.ErrorIs(t, svc.IncreasePrices(ctx), errDB)
	})
}

func TestService_RemoveBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("returns count", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().RemoveBooksWithCopiesBelow(gomock.Any(), 4200).Return(17, nil)

		n, err := svc.RemoveBooks(ctx)
		require.NoError(t, err)
		assert.Equal(t, 17, n)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo := newTestService(t)
		mockRepo.EXPECT().RemoveBooksWithCopiesBelow(gomock.Any(), 4200).Return(0, report.ErrRemovedCountMismatch)

		_, err := svc.RemoveBooks(ctx)
		assert.ErrorIs(t, err, report.ErrRemovedCountMismatch)
	})
}
