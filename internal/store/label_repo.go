package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// labelRepo implements LabelRepository.
type labelRepo struct {
	db *sqlx.DB
}

func (r *labelRepo) Create(ctx context.Context, label Label) (int64, error) {
	defer observeDB(ctx, "labels.create")()

	if strings.TrimSpace(label.Name) == "" {
		return 0, fmt.Errorf("label name must not be empty")
	}
	if strings.TrimSpace(label.Color) == "" {
		return 0, fmt.Errorf("label color must not be empty")
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO labels (name, color, created_at) VALUES (?, ?, ?)`,
		label.Name, label.Color, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("creating label: %w", err)
	}
	return res.LastInsertId()
}

func (r *labelRepo) List(ctx context.Context) ([]Label, error) {
	defer observeDB(ctx, "labels.list")()

	var labels []Label
	if err := r.db.SelectContext(ctx, &labels, `SELECT * FROM labels`); err != nil {
		return nil, fmt.Errorf("querying labels: %w", err)
	}
	return labels, nil
}

// Delete nulls label_id on every note referencing the label, then removes
// the label row. Detaching must come first: with foreign keys enforced,
// deleting a still-referenced label is a constraint violation. The two
// steps are sequential, not atomic; both statements are safe to retry.
func (r *labelRepo) Delete(ctx context.Context, id int64) error {
	defer observeDB(ctx, "labels.delete")()

	if _, err := r.db.ExecContext(ctx, `UPDATE notes SET label_id = NULL WHERE label_id = ?`, id); err != nil {
		return fmt.Errorf("detaching notes from label %d: %w", id, err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM labels WHERE label_id = ?`, id); err != nil {
		return fmt.Errorf("deleting label %d: %w", id, err)
	}
	return nil
}
