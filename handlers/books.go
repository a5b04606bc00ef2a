package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bookcatalog/auth"
	"bookcatalog/models"
	"bookcatalog/service"

	"github.com/go-chi/chi/v5"
)

type BooksHandler struct {
	Service *service.Books
}

// decodeBook returns nil for an empty request body so the service can
// report the missing body itself.
func decodeBook(r *http.Request) (models.Book, error) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return book, nil
}

// Add handles POST /api/books.
func (h *BooksHandler) Add(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBook(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid json body"})
		return
	}
	book, err := h.Service.Create(r.Context(), auth.CredentialFromRequest(r), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Book added",
		"data":    book,
	})
}

// Get handles GET /api/books/{bookId}.
func (h *BooksHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.Service.Get(r.Context(), chi.URLParam(r, "bookId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": book})
}

// Update handles PUT /api/books/{bookId}.
func (h *BooksHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBook(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid json body"})
		return
	}
	identity, err := h.Service.Update(r.Context(), auth.CredentialFromRequest(r), chi.URLParam(r, "bookId"), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Book updated successfully",
		"userId":  identity.Subject,
	})
}

// Delete handles DELETE /api/books/{bookId}.
func (h *BooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), auth.CredentialFromRequest(r), chi.URLParam(r, "bookId")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Book deleted"})
}

// Translate handles GET /api/books/{bookId}/translation?language=xx.
func (h *BooksHandler) Translate(w http.ResponseWriter, r *http.Request) {
	book, err := h.Service.Translate(r.Context(), chi.URLParam(r, "bookId"), r.URL.Query().Get("language"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": book})
}
