package report_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshop/internal/report"
	"bookshop/internal/report/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*http.ServeMux, *mocks.MockRepository) {
	t.Helper()
	svc, mockRepo := newTestService(t)
	mux := http.NewServeMux()
	report.NewHTTPHandler(svc).Register(mux)
	return mux, mockRepo
}

func serve(mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestHTTPHandler_List(t *testing.T) {
	mux, _ := newTestHandler(t)

	w := serve(mux, http.MethodGet, "/v1/reports")

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []struct {
			Name       string `json:"name"`
			NeedsInput bool   `json:"needs_input"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body.Data, 13)
	for _, e := range body.Data {
		assert.NotEqual(t, "remove-books", e.Name)
	}
}

func TestHTTPHandler_Run(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mux, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().TitlesContaining(gomock.Any(), "sk").Return([]string{"Dusk", "Skye"}, nil)

		w := serve(mux, http.MethodGet, "/v1/reports/book-titles-containing?input=sk")

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Success bool              `json:"success"`
			Data    map[string]string `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, "Dusk\nSkye", body.Data["output"])
	})

	t.Run("unknown report", func(t *testing.T) {
		mux, _ := newTestHandler(t)

		w := serve(mux, http.MethodGet, "/v1/reports/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("mutations are not reports", func(t *testing.T) {
		mux, _ := newTestHandler(t)

		w := serve(mux, http.MethodGet, "/v1/reports/remove-books")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		mux, _ := newTestHandler(t)

		w := serve(mux, http.MethodGet, "/v1/reports/books-released-before?input=1992-12-31")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed number", func(t *testing.T) {
		mux, _ := newTestHandler(t)

		w := serve(mux, http.MethodGet, "/v1/reports/count-books?input=ten")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage error", func(t *testing.T) {
		mux, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().ProfitByCategory(gomock.Any()).Return(nil, errDB)

		w := serve(mux, http.MethodGet, "/v1/reports/profit-by-category")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_Mutations(t *testing.T) {
	t.Run("increase prices", func(t *testing.T) {
		mux, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().IncreasePricesReleasedBefore(gomock.Any(), 2010, gomock.Any()).Return(4, nil)

		w := serve(mux, http.MethodPost, "/v1/books/price-increase")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("remove books", func(t *testing.T) {
		mux, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().RemoveBooksWithCopiesBelow(gomock.Any(), 4200).Return(3, nil)

		w := serve(mux, http.MethodDelete, "/v1/books/low-stock")

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data struct {
				Removed int `json:"removed"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, 3, body.Data.Removed)
	})

	t.Run("remove books failure", func(t *testing.T) {
		mux, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().RemoveBooksWithCopiesBelow(gomock.Any(), 4200).Return(0, report.ErrRemovedCountMismatch)

		w := serve(mux, http.MethodDelete, "/v1/books/low-stock")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		mux, _ := newTestHandler(t)

		w := serve(mux, http.MethodGet, "/v1/books/low-stock")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}
