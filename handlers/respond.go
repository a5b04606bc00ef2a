package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"bookcatalog/service"
)

type errorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

// writeError maps a classified service failure to its status code. An
// unclassified error still gets a stable 500 body instead of leaking.
func writeError(w http.ResponseWriter, err error) {
	kind := service.KindOf(err)
	body := errorResponse{Message: "internal server error"}
	if e, ok := err.(*service.Error); ok {
		body.Message = e.Message
		body.Errors = e.Diagnostics
	} else {
		log.Printf("unclassified error: %v", err)
	}
	writeJSON(w, statusForKind(kind), body)
}

func statusForKind(kind service.Kind) int {
	switch kind {
	case service.KindMissingCredential, service.KindInvalidCredential:
		return http.StatusUnauthorized
	case service.KindMissingIdentifier, service.KindInvalidBookID,
		service.KindMissingParameter, service.KindValidation:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
