// Package itinerary implements the trip aggregate repository using
// PostgreSQL. One itinerary row owns its day_plans rows, which own their
// activities rows; interests attach via the itinerary_interests join table.
// All reads and writes go through the context Querier, so calls made inside
// TxManager.RunInTx share one transaction.
package itinerary

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// Repo provides itinerary aggregate persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new itinerary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const itineraryColumns = "id, destination, departure_city, num_adults, num_children, from_date, to_date, owner_id, shareable_link, finalized, created_at, updated_at"

// ---------------------------------------------------------------------------
// Row types (scany)
// ---------------------------------------------------------------------------

type itineraryRow struct {
	ID            uuid.UUID  `db:"id"`
	Destination   string     `db:"destination"`
	DepartureCity string     `db:"departure_city"`
	NumAdults     int        `db:"num_adults"`
	NumChildren   int        `db:"num_children"`
	FromDate      time.Time  `db:"from_date"`
	ToDate        time.Time  `db:"to_date"`
	OwnerID       *uuid.UUID `db:"owner_id"`
	ShareableLink *string    `db:"shareable_link"`
	Finalized     bool       `db:"finalized"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

type dayPlanRow struct {
	ID          uuid.UUID `db:"id"`
	ItineraryID uuid.UUID `db:"itinerary_id"`
	DayNumber   int       `db:"day_number"`
}

type activityRow struct {
	ID                    uuid.UUID `db:"id"`
	DayPlanID             uuid.UUID `db:"day_plan_id"`
	Name                  string    `db:"name"`
	City                  string    `db:"city"`
	Description           string    `db:"description"`
	Address               string    `db:"address"`
	ExpectedDurationHours float64   `db:"expected_duration_hours"`
	EstimatedCostEUR      float64   `db:"estimated_cost_eur"`
	Position              int       `db:"position"`
	CreatedAt             time.Time `db:"created_at"`
}

type interestRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID loads the full aggregate by primary key.
// Returns domain.ErrNotFound if no itinerary exists.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Itinerary, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, false)
}

// GetByIDForUpdate loads the full aggregate by primary key, locking the
// itinerary row with FOR UPDATE. Must be called inside a transaction; the
// row lock is the serialization point for finalize and append operations on
// one itinerary.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Itinerary, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, true)
}

// GetByShareableLink loads the full aggregate by its shareable token.
// Returns domain.ErrNotFound if no itinerary carries the token.
func (r *Repo) GetByShareableLink(ctx context.Context, link string) (*domain.Itinerary, error) {
	return r.getOne(ctx, sq.Eq{"shareable_link": link}, false)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, forUpdate bool) (*domain.Itinerary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Select(itineraryColumns).From("itineraries").Where(where)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build itinerary query: %w", err)
	}

	var row itineraryRow
	if err := pgxscan.Get(ctx, querier, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "itinerary", where)
	}

	it := toDomainItinerary(row)

	if err := r.loadDayPlans(ctx, querier, it); err != nil {
		return nil, err
	}
	if err := r.loadInterests(ctx, querier, it); err != nil {
		return nil, err
	}

	return it, nil
}

const dayPlansSQL = `
SELECT id, itinerary_id, day_number
FROM day_plans
WHERE itinerary_id = $1
ORDER BY day_number`

const activitiesSQL = `
SELECT a.id, a.day_plan_id, a.name, a.city, a.description, a.address,
       a.expected_duration_hours, a.estimated_cost_eur, a.position, a.created_at
FROM activities a
JOIN day_plans dp ON a.day_plan_id = dp.id
WHERE dp.itinerary_id = $1
ORDER BY dp.day_number, a.position`

const interestsSQL = `
SELECT i.id, i.name, i.created_at
FROM itinerary_interests ii
JOIN interests i ON ii.interest_id = i.id
WHERE ii.itinerary_id = $1
ORDER BY i.name`

func (r *Repo) loadDayPlans(ctx context.Context, querier postgres.Querier, it *domain.Itinerary) error {
	var planRows []dayPlanRow
	if err := pgxscan.Select(ctx, querier, &planRows, dayPlansSQL, it.ID); err != nil {
		return fmt.Errorf("load day plans: %w", err)
	}

	var actRows []activityRow
	if err := pgxscan.Select(ctx, querier, &actRows, activitiesSQL, it.ID); err != nil {
		return fmt.Errorf("load activities: %w", err)
	}

	byPlan := make(map[uuid.UUID][]domain.Activity, len(planRows))
	for _, a := range actRows {
		byPlan[a.DayPlanID] = append(byPlan[a.DayPlanID], domain.Activity{
			ID:                    a.ID,
			Name:                  a.Name,
			City:                  a.City,
			Description:           a.Description,
			Address:               a.Address,
			ExpectedDurationHours: a.ExpectedDurationHours,
			EstimatedCostEUR:      a.EstimatedCostEUR,
			Position:              a.Position,
			CreatedAt:             a.CreatedAt,
		})
	}

	it.DayPlans = make([]domain.DayPlan, len(planRows))
	for i, p := range planRows {
		it.DayPlans[i] = domain.DayPlan{
			ID:         p.ID,
			DayNumber:  p.DayNumber,
			Activities: byPlan[p.ID],
		}
	}

	return nil
}

func (r *Repo) loadInterests(ctx context.Context, querier postgres.Querier, it *domain.Itinerary) error {
	var rows []interestRow
	if err := pgxscan.Select(ctx, querier, &rows, interestsSQL, it.ID); err != nil {
		return fmt.Errorf("load interests: %w", err)
	}

	it.Interests = make([]domain.Interest, len(rows))
	for i, row := range rows {
		it.Interests[i] = domain.Interest{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertItinerarySQL = `
INSERT INTO itineraries (id, destination, departure_city, num_adults, num_children,
                         from_date, to_date, owner_id, finalized)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING created_at, updated_at`

const insertDayPlanSQL = `
INSERT INTO day_plans (id, itinerary_id, day_number)
VALUES ($1, $2, $3)`

// Create persists a freshly constructed aggregate: the itinerary row, one
// day_plans row per day, and the interest links. Callers are expected to run
// it inside a transaction.
func (r *Repo) Create(ctx context.Context, it *domain.Itinerary) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	err := querier.QueryRow(ctx, insertItinerarySQL,
		it.ID, it.Destination, it.DepartureCity, it.NumberOfAdults, it.NumberOfChildren,
		it.FromDate, it.ToDate, it.OwnerID, it.Finalized,
	).Scan(&it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "itinerary", it.ID)
	}

	for _, dp := range it.DayPlans {
		if _, err := querier.Exec(ctx, insertDayPlanSQL, dp.ID, it.ID, dp.DayNumber); err != nil {
			return postgres.MapError(err, "day_plan", dp.DayNumber)
		}
	}
	for _, in := range it.Interests {
		if _, err := querier.Exec(ctx, insertInterestLinkSQL, it.ID, in.ID); err != nil {
			return postgres.MapError(err, "interest", in.ID)
		}
	}

	return nil
}

const deleteInterestLinksSQL = `DELETE FROM itinerary_interests WHERE itinerary_id = $1`

const insertInterestLinkSQL = `
INSERT INTO itinerary_interests (itinerary_id, interest_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

const touchItinerarySQL = `UPDATE itineraries SET updated_at = now() WHERE id = $1`

// ReplaceInterests swaps the full interest link set for an itinerary.
// Callers are expected to run it inside a transaction.
func (r *Repo) ReplaceInterests(ctx context.Context, itineraryID uuid.UUID, interestIDs []uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteInterestLinksSQL, itineraryID); err != nil {
		return postgres.MapError(err, "itinerary", itineraryID)
	}

	for _, interestID := range interestIDs {
		if _, err := querier.Exec(ctx, insertInterestLinkSQL, itineraryID, interestID); err != nil {
			return postgres.MapError(err, "itinerary", itineraryID)
		}
	}

	if _, err := querier.Exec(ctx, touchItinerarySQL, itineraryID); err != nil {
		return postgres.MapError(err, "itinerary", itineraryID)
	}

	return nil
}

const insertActivitySQL = `
INSERT INTO activities (id, day_plan_id, name, city, description, address,
                        expected_duration_hours, estimated_cost_eur, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING created_at`

// AddActivity appends one activity row to a day plan. Position is assigned by
// the aggregate before the call; the (day_plan_id, position) unique index
// rejects interleaved appends that would silently drop an activity.
func (r *Repo) AddActivity(ctx context.Context, dayPlanID uuid.UUID, a *domain.Activity) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	err := querier.QueryRow(ctx, insertActivitySQL,
		a.ID, dayPlanID, a.Name, a.City, a.Description, a.Address,
		a.ExpectedDurationHours, a.EstimatedCostEUR, a.Position,
	).Scan(&a.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "activity", a.ID)
	}

	if _, err := querier.Exec(ctx, `UPDATE itineraries SET updated_at = now() WHERE id = (SELECT itinerary_id FROM day_plans WHERE id = $1)`, dayPlanID); err != nil {
		return postgres.MapError(err, "day_plan", dayPlanID)
	}

	return nil
}

const setOwnerSQL = `
UPDATE itineraries SET owner_id = $2, updated_at = now()
WHERE id = $1 AND owner_id IS NULL`

// SetOwner claims an unowned itinerary for a user.
// Returns domain.ErrForbidden if the itinerary is already owned; under the
// FOR UPDATE lock this only happens when the caller skipped the lock.
func (r *Repo) SetOwner(ctx context.Context, itineraryID, ownerID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setOwnerSQL, itineraryID, ownerID)
	if err != nil {
		return postgres.MapError(err, "itinerary", itineraryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("itinerary %s already owned: %w", itineraryID, domain.ErrForbidden)
	}

	return nil
}

const finalizeSQL = `
UPDATE itineraries
SET finalized = TRUE,
    shareable_link = COALESCE(shareable_link, $2),
    updated_at = now()
WHERE id = $1
RETURNING shareable_link`

// Finalize marks the itinerary finalized and mints the shareable token if it
// has none yet. Returns the token actually stored, which may predate this
// call.
func (r *Repo) Finalize(ctx context.Context, itineraryID uuid.UUID, shareableLink string) (string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var stored string
	err := querier.QueryRow(ctx, finalizeSQL, itineraryID, shareableLink).Scan(&stored)
	if err != nil {
		return "", postgres.MapError(err, "itinerary", itineraryID)
	}

	return stored, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainItinerary(row itineraryRow) *domain.Itinerary {
	return &domain.Itinerary{
		ID:               row.ID,
		Destination:      row.Destination,
		DepartureCity:    row.DepartureCity,
		NumberOfAdults:   row.NumAdults,
		NumberOfChildren: row.NumChildren,
		FromDate:         row.FromDate,
		ToDate:           row.ToDate,
		OwnerID:          row.OwnerID,
		ShareableLink:    row.ShareableLink,
		Finalized:        row.Finalized,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
