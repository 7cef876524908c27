package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Error   string               `json:"error"`
	Details []fieldErrorResponse `json:"details"`
}

// handleError maps domain errors to HTTP statuses. Unrecognized errors are
// logged and reported as opaque 500s.
func handleError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, err error) {
	var (
		validationErr *domain.ValidationError
		aiErr         *domain.AiServiceError
	)

	switch {
	case errors.As(err, &validationErr):
		details := make([]fieldErrorResponse, len(validationErr.Errors))
		for i, fe := range validationErr.Errors {
			details[i] = fieldErrorResponse{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, validationErrorResponse{
			Error:   "validation failed",
			Details: details,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrFinalized):
		writeError(w, http.StatusConflict, "itinerary is finalized")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.As(err, &aiErr):
		writeError(w, http.StatusBadGateway, aiErr.Message)
	case errors.Is(err, domain.ErrAiService):
		writeError(w, http.StatusBadGateway, "ai service error")
	case errors.Is(err, domain.ErrAiUnavailable):
		writeError(w, http.StatusServiceUnavailable, "ai provider unavailable")
	default:
		log.ErrorContext(ctx, "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
