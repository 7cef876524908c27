package rest

import (
	"net/http"

	"github.com/heartmarshall/tripplanner-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Trip        *TripHandler
	Suggestions *SuggestionHandler
	Auth        *AuthHandler
	Health      *HealthHandler

	// SuggestionLimit guards the endpoints that trigger model calls.
	SuggestionLimit middleware.Middleware
}

// NewRouter builds the HTTP route table. Method-qualified patterns give 405
// for wrong methods on known paths.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	limit := deps.SuggestionLimit
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)

	mux.HandleFunc("POST /api/auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", deps.Auth.Login)

	mux.HandleFunc("POST /api/trip/start", deps.Trip.Start)
	mux.HandleFunc("GET /api/trip/interests", deps.Trip.ListInterests)
	mux.HandleFunc("GET /api/trip/{id}", deps.Trip.Get)
	mux.HandleFunc("POST /api/trip/{id}/interests", deps.Trip.UpdateInterests)
	mux.HandleFunc("POST /api/trip/{id}/days/{dayNumber}/activities", deps.Trip.AddActivity)
	mux.HandleFunc("POST /api/trip/{id}/finalize", deps.Trip.Finalize)
	mux.HandleFunc("GET /api/shared/{shareableLink}", deps.Trip.GetShared)

	mux.Handle("POST /api/trip/suggestions/countries",
		limit(http.HandlerFunc(deps.Suggestions.SuggestDestinations)))
	mux.Handle("GET /api/trip/{id}/days/{dayNumber}/suggestions/activities",
		limit(http.HandlerFunc(deps.Suggestions.SuggestActivities)))

	return mux
}
