package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const contextSubjectKey contextKey = "sub"

func accountIDFromContext(ctx context.Context) (uuid.UUID, error) {
	subject, ok := ctx.Value(contextSubjectKey).(string)
	if !ok {
		return uuid.Nil, errors.New("missing subject")
	}
	id, err := uuid.Parse(strings.TrimSpace(subject))
	if err != nil {
		return uuid.Nil, errors.New("invalid subject")
	}
	return id, nil
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// ErrorResponse is a simple error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
