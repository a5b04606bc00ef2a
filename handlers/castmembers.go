package handlers

import (
	"net/http"

	"bookcatalog/service"

	"github.com/go-chi/chi/v5"
)

type CastMembersHandler struct {
	Service *service.CastMembers
}

// Get handles GET /api/books/{bookId}/cast. Optional name / roleName query
// parameters narrow the lookup to a prefix match.
func (h *CastMembersHandler) Get(w http.ResponseWriter, r *http.Request) {
	params := make(map[string]string)
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			params[k] = vs[0]
		}
	}
	members, err := h.Service.List(r.Context(), chi.URLParam(r, "bookId"), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": members})
}
