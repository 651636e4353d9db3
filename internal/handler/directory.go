package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/admindesk/admindesk/internal/store"
)

// pageSize is the fixed page length for the directory list endpoint.
const pageSize = 20

// DirectoryHandler serves the read-only end-user directory: paginated list,
// detail view, country/city filter, and name/email search.
type DirectoryHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewDirectoryHandler creates a DirectoryHandler.
func NewDirectoryHandler(st *store.Store, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{store: st, logger: logger}
}

// List returns one page of name+email summaries. Pages are 1-based and 20
// records long; anything below 1 is rejected before an offset is computed.
// GET /api/v1/users?page=N
func (h *DirectoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	if page < 1 {
		respondError(w, http.StatusBadRequest, "invalid values",
			map[string]string{"page": "must be a positive integer"})
		return
	}

	users, err := h.store.ListUsers(r.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		h.logger.Error("list users failed", "page", page, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error", nil)
		return
	}

	respondOK(w, users, "")
}

// DetailedView returns the name/email/country/city/company projection for a
// single user.
// GET /api/v1/users/{id}
func (h *DirectoryHandler) DetailedView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusBadRequest, "user not found", nil)
			return
		}
		h.logger.Error("get user failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error", nil)
		return
	}

	respondOK(w, user.Detail(), "")
}

// FilterUsers returns full records matching the country and city fragments.
// Both filters are optional; an omitted fragment matches everything.
// GET /api/v1/users/filter?country=&city=
func (h *DirectoryHandler) FilterUsers(w http.ResponseWriter, r *http.Request) {
	country := queryString(r, "country")
	city := queryString(r, "city")

	users, err := h.store.FilterUsers(r.Context(), country, city)
	if err != nil {
		h.logger.Error("filter users failed", "country", country, "city", city, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error", nil)
		return
	}

	respondOK(w, users, "")
}

// SearchUsers returns profile projections of users whose name or email
// contains the query fragment.
// GET /api/v1/users/search/{query}
func (h *DirectoryHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	if query == "" {
		respondError(w, http.StatusBadRequest, "invalid values",
			map[string]string{"query": "the query field is required"})
		return
	}

	users, err := h.store.SearchUsers(r.Context(), query)
	if err != nil {
		h.logger.Error("search users failed", "query", query, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error", nil)
		return
	}

	respondOK(w, users, "")
}
