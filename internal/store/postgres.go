package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"charity-events-backend/internal/apperr"
	"charity-events-backend/internal/models"
)

// schemaSQL is embedded so the service can self-bootstrap its database schema.
//
//go:embed schema.sql
var schemaSQL string

// eventColumns is the canonical column order shared by every SELECT,
// so all of them scan through the same helper.
const eventColumns = `event_id, event_name, event_date, start_time, location, description, category, ticket_price, goal_amount, raised_amount, suspended`

// pgxConn is the subset of pgxpool.Pool the store touches. Tests
// substitute a pgxmock pool through it.
type pgxConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore is the durable persistence layer for events and
// registrations. Each method issues exactly one parameterized statement.
type PostgresStore struct {
	pool pgxConn
}

// NewPostgresStore creates a connection pool and fails fast if DB is unreachable.
func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema applies schema.sql. Safe to run multiple times.
func (p *PostgresStore) EnsureSchema() error {
	_, err := p.pool.Exec(context.Background(), schemaSQL)
	return err
}

// Ping validates DB connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

// CountEvents returns the total number of events, used by the DB probe
// endpoint.
func (p *PostgresStore) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}

// ListEvents returns every event ordered by event_date ascending.
func (p *PostgresStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY event_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

// GetEvent returns one event by id, or a NotFound error.
func (p *PostgresStore) GetEvent(ctx context.Context, id int64) (models.Event, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE event_id = $1`, id)
	ev, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Event{}, apperr.New(apperr.NotFound, "Event not found")
	}
	return ev, err
}

// CreateEvent inserts a new event and returns its server-assigned id.
// Pricing and progress columns take their schema defaults.
func (p *PostgresStore) CreateEvent(ctx context.Context, req models.EventUpsertRequest) (int64, error) {
	var id int64
	err := p.pool.QueryRow(ctx, `
		INSERT INTO events (event_name, event_date, location, description)
		VALUES ($1, $2, $3, $4)
		RETURNING event_id
	`, req.EventName, req.EventDate, req.Location, req.Description).Scan(&id)
	return id, err
}

// UpdateEvent overwrites the writable fields of an existing event.
func (p *PostgresStore) UpdateEvent(ctx context.Context, id int64, req models.EventUpsertRequest) error {
	tag, err := p.pool.Exec(ctx, `
		UPDATE events SET event_name = $1, event_date = $2, location = $3, description = $4
		WHERE event_id = $5
	`, req.EventName, req.EventDate, req.Location, req.Description, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "Event not found")
	}
	return nil
}

// DeleteEvent removes an event; registrations cascade at the schema level.
func (p *PostgresStore) DeleteEvent(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM events WHERE event_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "Event not found")
	}
	return nil
}

// SetSuspended flips the suspension flag on an existing event.
func (p *PostgresStore) SetSuspended(ctx context.Context, id int64, suspended bool) error {
	tag, err := p.pool.Exec(ctx, `UPDATE events SET suspended = $1 WHERE event_id = $2`, suspended, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "Event not found")
	}
	return nil
}

// SearchEvents builds the WHERE clause from whichever filters are
// present. All clauses are conjunctive and every user value is bound
// positionally; unless IncludeSuspended is set, suspended rows are
// filtered out.
func (p *PostgresStore) SearchEvents(ctx context.Context, q models.SearchQuery) ([]models.Event, error) {
	where := make([]string, 0, 5)
	args := make([]any, 0, 4)

	if !q.IncludeSuspended {
		where = append(where, "suspended = FALSE")
	}
	if q.From != "" {
		args = append(args, q.From)
		where = append(where, fmt.Sprintf("event_date >= $%d", len(args)))
	}
	if q.To != "" {
		args = append(args, q.To)
		where = append(where, fmt.Sprintf("event_date <= $%d", len(args)))
	}
	if q.Location != "" {
		args = append(args, "%"+q.Location+"%")
		where = append(where, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if q.Category != "" {
		args = append(args, q.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}

	sql := `SELECT ` + eventColumns + ` FROM events`
	if len(where) > 0 {
		sql += ` WHERE ` + strings.Join(where, " AND ")
	}
	sql += ` ORDER BY event_date, start_time`

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

// AddRegistration records an attendee for an event. A missing event
// surfaces as a foreign-key violation from the database.
func (p *PostgresStore) AddRegistration(ctx context.Context, eventID int64, req models.RegistrationRequest) error {
	tickets := req.Tickets
	if tickets <= 0 {
		tickets = 1
	}
	_, err := p.pool.Exec(ctx, `
		INSERT INTO registrations (event_id, full_name, email, tickets)
		VALUES ($1, $2, $3, $4)
	`, eventID, req.FullName, req.Email, tickets)
	return err
}

// scanEvent maps one row onto the wire shape, normalizing the DATE and
// TIME columns to the strings the client renders.
func scanEvent(row pgx.Row) (models.Event, error) {
	var (
		ev             models.Event
		date           time.Time
		start          pgtype.Time
		loc, desc, cat pgtype.Text
	)
	err := row.Scan(
		&ev.EventID, &ev.EventName, &date, &start, &loc, &desc, &cat,
		&ev.TicketPrice, &ev.GoalAmount, &ev.RaisedAmount, &ev.Suspended,
	)
	if err != nil {
		return models.Event{}, err
	}

	ev.EventDate = date.Format("2006-01-02")
	if start.Valid {
		s := timeOfDay(start.Microseconds)
		ev.StartTime = &s
	}
	if loc.Valid {
		v := loc.String
		ev.Location = &v
	}
	if desc.Valid {
		v := desc.String
		ev.Description = &v
	}
	if cat.Valid {
		v := cat.String
		ev.Category = &v
	}
	return ev, nil
}

func collectEvents(rows pgx.Rows) ([]models.Event, error) {
	events := make([]models.Event, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// timeOfDay renders microseconds-since-midnight as HH:MM:SS.
func timeOfDay(us int64) string {
	secs := us / 1e6
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}
