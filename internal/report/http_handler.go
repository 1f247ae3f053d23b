package report

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"bookshop/internal/httpx"

	"github.com/rs/zerolog/log"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Register mounts the report routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/reports", h.List)
	mux.HandleFunc("GET /v1/reports/{name}", h.Run)
	mux.HandleFunc("POST /v1/books/price-increase", h.IncreasePrices)
	mux.HandleFunc("DELETE /v1/books/low-stock", h.RemoveBooks)
}

type exerciseInfo struct {
	Name       string `json:"name"`
	NeedsInput bool   `json:"needs_input"`
}

// List handles GET /v1/reports
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	var out []exerciseInfo
	for _, e := range Exercises {
		if e.Mutates {
			continue
		}
		out = append(out, exerciseInfo{Name: e.Name, NeedsInput: e.NeedsInput})
	}
	httpx.JSONSuccess(w, r, out, map[string]any{"total": len(out)})
}

// Run handles GET /v1/reports/{name}?input=
func (h *HTTPHandler) Run(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	exercise, ok := Lookup(name)
	if !ok || exercise.Mutates {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Unknown report: "+name, nil)
		return
	}

	out, err := exercise.Run(r.Context(), h.svc, r.URL.Query().Get("input"))
	if err != nil {
		h.writeError(w, r, name, err)
		return
	}

	httpx.JSONSuccess(w, r, map[string]string{"name": name, "output": out}, nil)
}

type removedBooks struct {
	Removed int `json:"removed"`
}

// IncreasePrices handles POST /v1/books/price-increase
func (h *HTTPHandler) IncreasePrices(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.IncreasePrices(r.Context()); err != nil {
		h.writeError(w, r, "increase-prices", err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]bool{"increased": true}, nil)
}

// RemoveBooks handles DELETE /v1/books/low-stock
func (h *HTTPHandler) RemoveBooks(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.RemoveBooks(r.Context())
	if err != nil {
		h.writeError(w, r, "remove-books", err)
		return
	}
	httpx.JSONSuccess(w, r, removedBooks{Removed: n}, nil)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, exercise string, err error) {
	var (
		parseErr *time.ParseError
		numErr   *strconv.NumError
	)
	switch {
	case errors.As(err, &parseErr), errors.As(err, &numErr):
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), []httpx.ErrorDetail{
			{Field: "input", Message: "malformed input"},
		})
	default:
		log.Error().Err(err).Str("exercise", exercise).Str("request_id", httpx.RequestIDFrom(r)).Msg("exercise failed")
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
