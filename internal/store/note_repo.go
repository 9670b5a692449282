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

// untitledName is used for audit entries when a note has no title.
const untitledName = "untitled"

// noteRepo implements NoteRepository.
type noteRepo struct {
	db *sqlx.DB
}

func (r *noteRepo) Create(ctx context.Context, note Note) (int64, error) {
	defer observeDB(ctx, "notes.create")()

	if note.Title == nil || strings.TrimSpace(*note.Title) == "" {
		return 0, fmt.Errorf("note title must not be empty")
	}
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO notes (title, content, color, label_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		note.Title, note.Content, note.Color, note.LabelID, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("creating note: %w", err)
	}
	return res.LastInsertId()
}

func (r *noteRepo) List(ctx context.Context) ([]Note, error) {
	defer observeDB(ctx, "notes.list")()

	var notes []Note
	if err := r.db.SelectContext(ctx, &notes, `SELECT * FROM notes`); err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	return notes, nil
}

// Update rewrites every column of the row. A missing id is a silent no-op.
func (r *noteRepo) Update(ctx context.Context, note Note) error {
	defer observeDB(ctx, "notes.update")()

	if note.Title == nil || strings.TrimSpace(*note.Title) == "" {
		return fmt.Errorf("note title must not be empty")
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE notes SET
			title = ?, content = ?, color = ?, label_id = ?, updated_at = ?
		WHERE note_id = ?`,
		note.Title, note.Content, note.Color, note.LabelID, time.Now().UTC(),
		note.ID,
	)
	if err != nil {
		return fmt.Errorf("updating note %d: %w", note.ID, err)
	}
	return nil
}

func (r *noteRepo) Delete(ctx context.Context, id int64) error {
	defer observeDB(ctx, "notes.delete")()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE note_id = ?`, id); err != nil {
		return fmt.Errorf("deleting note %d: %w", id, err)
	}
	return nil
}

func (r *noteRepo) GetTitle(ctx context.Context, id int64) (string, error) {
	defer observeDB(ctx, "notes.get_title")()

	var title *string
	err := r.db.GetContext(ctx, &title, `SELECT title FROM notes WHERE note_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("getting note %d title: %w", id, err)
	}
	if title == nil || *title == "" {
		return untitledName, nil
	}
	return *title, nil
}
