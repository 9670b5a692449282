package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// eventRepo implements EventRepository.
type eventRepo struct {
	db *sqlx.DB
}

func (r *eventRepo) Create(ctx context.Context, event Event) (int64, error) {
	defer observeDB(ctx, "events.create")()

	if strings.TrimSpace(event.Title) == "" {
		return 0, fmt.Errorf("event title must not be empty")
	}
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO events (title, description, start_time, end_time, priority_level_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.Title, event.Description, event.StartTime, event.EndTime, event.PriorityID, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("creating event: %w", err)
	}
	return res.LastInsertId()
}

func (r *eventRepo) List(ctx context.Context) ([]Event, error) {
	defer observeDB(ctx, "events.list")()

	var events []Event
	if err := r.db.SelectContext(ctx, &events, `SELECT * FROM events`); err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	return events, nil
}

// Update rewrites every column of the row. A missing id is a silent no-op.
func (r *eventRepo) Update(ctx context.Context, event Event) error {
	defer observeDB(ctx, "events.update")()

	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("event title must not be empty")
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE events SET
			title = ?, description = ?, start_time = ?,
			end_time = ?, priority_level_id = ?, updated_at = ?
		WHERE event_id = ?`,
		event.Title, event.Description, event.StartTime,
		event.EndTime, event.PriorityID, time.Now().UTC(),
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("updating event %d: %w", event.ID, err)
	}
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, id int64) error {
	defer observeDB(ctx, "events.delete")()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE event_id = ?`, id); err != nil {
		return fmt.Errorf("deleting event %d: %w", id, err)
	}
	return nil
}

func (r *eventRepo) GetTitle(ctx context.Context, id int64) (string, error) {
	defer observeDB(ctx, "events.get_title")()

	var title string
	err := r.db.GetContext(ctx, &title, `SELECT title FROM events WHERE event_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("getting event %d title: %w", id, err)
	}
	return title, nil
}
