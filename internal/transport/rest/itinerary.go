package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/internal/service/itinerary"
)

const dateLayout = "2006-01-02"

// itineraryService defines the minimal interface needed by TripHandler.
type itineraryService interface {
	Create(ctx context.Context, input itinerary.CreateInput) (*domain.Itinerary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Itinerary, error)
	GetShared(ctx context.Context, link string) (*domain.Itinerary, error)
	ListInterests(ctx context.Context) ([]domain.Interest, error)
	UpdateInterests(ctx context.Context, itineraryID uuid.UUID, input itinerary.UpdateInterestsInput) (*domain.Itinerary, error)
	AddActivity(ctx context.Context, itineraryID uuid.UUID, dayNumber int, input itinerary.AddActivityInput) (*domain.Itinerary, error)
	Finalize(ctx context.Context, itineraryID uuid.UUID) (*domain.Itinerary, error)
}

// TripHandler serves the trip-planning REST endpoints.
type TripHandler struct {
	svc itineraryService
	log *slog.Logger
}

// NewTripHandler creates a TripHandler.
func NewTripHandler(svc itineraryService, logger *slog.Logger) *TripHandler {
	return &TripHandler{svc: svc, log: logger.With("handler", "trip")}
}

type startTripRequest struct {
	Destination      string   `json:"destination"`
	DepartureCity    string   `json:"departureCity"`
	NumberOfAdults   int      `json:"numberOfAdults"`
	NumberOfChildren int      `json:"numberOfChildren"`
	FromDate         string   `json:"fromDate"`
	ToDate           string   `json:"toDate"`
	Interests        []string `json:"interests"`
}

type updateInterestsRequest struct {
	Interests []string `json:"interests"`
}

type addActivityRequest struct {
	Name                  string  `json:"name"`
	City                  string  `json:"city"`
	Description           string  `json:"description"`
	Address               string  `json:"address"`
	ExpectedDurationHours float64 `json:"expectedDurationHours"`
	EstimatedCostEUR      float64 `json:"estimatedCostEUR"`
}

type itineraryResponse struct {
	ID               string            `json:"id"`
	Destination      string            `json:"destination"`
	DepartureCity    string            `json:"departureCity"`
	NumberOfAdults   int               `json:"numberOfAdults"`
	NumberOfChildren int               `json:"numberOfChildren"`
	FromDate         string            `json:"fromDate"`
	ToDate           string            `json:"toDate"`
	Finalized        bool              `json:"finalized"`
	ShareableLink    *string           `json:"shareableLink,omitempty"`
	Interests        []string          `json:"interests"`
	DayPlans         []dayPlanResponse `json:"dayPlans"`
}

type dayPlanResponse struct {
	ID         string             `json:"id"`
	DayNumber  int                `json:"dayNumber"`
	Activities []activityResponse `json:"activities"`
}

type activityResponse struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	City                  string  `json:"city"`
	Description           string  `json:"description"`
	Address               string  `json:"address"`
	ExpectedDurationHours float64 `json:"expectedDurationHours"`
	EstimatedCostEUR      float64 `json:"estimatedCostEUR"`
	Position              int     `json:"position"`
}

type interestResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Start handles POST /api/trip/start.
func (h *TripHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := itinerary.CreateInput{
		Destination:      req.Destination,
		DepartureCity:    req.DepartureCity,
		NumberOfAdults:   req.NumberOfAdults,
		NumberOfChildren: req.NumberOfChildren,
		Interests:        req.Interests,
	}

	var err error
	if input.FromDate, err = parseDate(req.FromDate); err != nil {
		handleError(r.Context(), h.log, w, domain.NewValidationError("fromDate", "must be a date in YYYY-MM-DD format"))
		return
	}
	if input.ToDate, err = parseDate(req.ToDate); err != nil {
		handleError(r.Context(), h.log, w, domain.NewValidationError("toDate", "must be a date in YYYY-MM-DD format"))
		return
	}

	it, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItineraryResponse(it))
}

// Get handles GET /api/trip/{id}.
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid itinerary id")
		return
	}

	it, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toItineraryResponse(it))
}

// GetShared handles GET /api/shared/{shareableLink}.
func (h *TripHandler) GetShared(w http.ResponseWriter, r *http.Request) {
	it, err := h.svc.GetShared(r.Context(), r.PathValue("shareableLink"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toItineraryResponse(it))
}

// ListInterests handles GET /api/trip/interests.
func (h *TripHandler) ListInterests(w http.ResponseWriter, r *http.Request) {
	interests, err := h.svc.ListInterests(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]interestResponse, len(interests))
	for i, in := range interests {
		out[i] = interestResponse{ID: in.ID.String(), Name: in.Name}
	}
	writeJSON(w, http.StatusOK, out)
}

// UpdateInterests handles POST /api/trip/{id}/interests.
func (h *TripHandler) UpdateInterests(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid itinerary id")
		return
	}

	var req updateInterestsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	it, err := h.svc.UpdateInterests(r.Context(), id, itinerary.UpdateInterestsInput{Interests: req.Interests})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toItineraryResponse(it))
}

// AddActivity handles POST /api/trip/{id}/days/{dayNumber}/activities.
func (h *TripHandler) AddActivity(w http.ResponseWriter, r *http.Request) {
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

	var req addActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	it, err := h.svc.AddActivity(r.Context(), id, dayNumber, itinerary.AddActivityInput{
		Name:                  req.Name,
		City:                  req.City,
		Description:           req.Description,
		Address:               req.Address,
		ExpectedDurationHours: req.ExpectedDurationHours,
		EstimatedCostEUR:      req.EstimatedCostEUR,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toItineraryResponse(it))
}

// Finalize handles POST /api/trip/{id}/finalize.
func (h *TripHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid itinerary id")
		return
	}

	it, err := h.svc.Finalize(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toItineraryResponse(it))
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func toItineraryResponse(it *domain.Itinerary) itineraryResponse {
	resp := itineraryResponse{
		ID:               it.ID.String(),
		Destination:      it.Destination,
		DepartureCity:    it.DepartureCity,
		NumberOfAdults:   it.NumberOfAdults,
		NumberOfChildren: it.NumberOfChildren,
		FromDate:         it.FromDate.Format(dateLayout),
		ToDate:           it.ToDate.Format(dateLayout),
		Finalized:        it.Finalized,
		ShareableLink:    it.ShareableLink,
		Interests:        it.InterestNames(),
		DayPlans:         make([]dayPlanResponse, len(it.DayPlans)),
	}
	for i, dp := range it.DayPlans {
		plan := dayPlanResponse{
			ID:         dp.ID.String(),
			DayNumber:  dp.DayNumber,
			Activities: make([]activityResponse, len(dp.Activities)),
		}
		for j, a := range dp.Activities {
			plan.Activities[j] = activityResponse{
				ID:                    a.ID.String(),
				Name:                  a.Name,
				City:                  a.City,
				Description:           a.Description,
				Address:               a.Address,
				ExpectedDurationHours: a.ExpectedDurationHours,
				EstimatedCostEUR:      a.EstimatedCostEUR,
				Position:              a.Position,
			}
		}
		resp.DayPlans[i] = plan
	}
	return resp
}
