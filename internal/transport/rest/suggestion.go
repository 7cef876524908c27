package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripplanner-backend/internal/service/suggestion"
)

// suggestionService defines the minimal interface needed by SuggestionHandler.
type suggestionService interface {
	SuggestDestinations(ctx context.Context, preferences []string) ([]suggestion.DestinationSuggestion, error)
	SuggestActivities(ctx context.Context, itineraryID uuid.UUID, dayNumber int) ([]suggestion.ActivitySuggestion, error)
}

// SuggestionHandler serves the AI suggestion REST endpoints.
type SuggestionHandler struct {
	svc suggestionService
	log *slog.Logger
}

// NewSuggestionHandler creates a SuggestionHandler.
func NewSuggestionHandler(svc suggestionService, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{svc: svc, log: logger.With("handler", "suggestion")}
}

type suggestDestinationsRequest struct {
	Preferences []string `json:"preferences"`
}

type destinationSuggestionResponse struct {
	Country  string `json:"country"`
	City     string `json:"city"`
	Overview string `json:"overview"`
	ImageURL string `json:"imageUrl"`
}

type activitySuggestionResponse struct {
	Name                  string  `json:"name"`
	City                  string  `json:"city"`
	Description           string  `json:"description"`
	ExpectedDurationHours float64 `json:"expectedDurationHours"`
	EstimatedCostEUR      float64 `json:"estimatedCostEUR"`
	Address               string  `json:"address"`
	ImageURL              string  `json:"imageUrl"`
}

// SuggestDestinations handles POST /api/trip/suggestions/countries.
func (h *SuggestionHandler) SuggestDestinations(w http.ResponseWriter, r *http.Request) {
	var req suggestDestinationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	suggestions, err := h.svc.SuggestDestinations(r.Context(), req.Preferences)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]destinationSuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		out[i] = destinationSuggestionResponse{
			Country:  s.Country,
			City:     s.City,
			Overview: s.Overview,
			ImageURL: s.ImageURL,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// SuggestActivities handles GET /api/trip/{id}/days/{dayNumber}/suggestions/activities.
func (h *SuggestionHandler) SuggestActivities(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid itinerary id")
		return
	}
	dayNumber, err := strconv.Atoi(r.PathValue("dayNumber"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid day number")
		return
	}

	suggestions, err := h.svc.SuggestActivities(r.Context(), id, dayNumber)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]activitySuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		out[i] = activitySuggestionResponse{
			Name:                  s.Name,
			City:                  s.City,
			Description:           s.Description,
			ExpectedDurationHours: s.ExpectedDurationHours,
			EstimatedCostEUR:      s.EstimatedCostEUR,
			Address:               s.Address,
			ImageURL:              s.ImageURL,
		}
	}
	writeJSON(w, http.StatusOK, out)
}
