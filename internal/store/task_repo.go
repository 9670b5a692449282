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

// taskRepo implements TaskRepository.
type taskRepo struct {
	db *sqlx.DB
}

func (r *taskRepo) Create(ctx context.Context, task Task) (int64, error) {
	defer observeDB(ctx, "tasks.create")()

	if strings.TrimSpace(task.Title) == "" {
		return 0, fmt.Errorf("task title must not be empty")
	}
	if task.StatusID == 0 {
		task.StatusID = StatusIncomplete
	}
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (title, description, due_date, priority_level_id, status_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.Title, task.Description, task.DueDate, task.PriorityID, task.StatusID, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("creating task: %w", err)
	}
	return res.LastInsertId()
}

func (r *taskRepo) List(ctx context.Context) ([]TaskListing, error) {
	defer observeDB(ctx, "tasks.list")()

	var tasks []TaskListing
	err := r.db.SelectContext(ctx, &tasks, `
		SELECT t.task_id, t.title, t.description, t.due_date, t.priority_level_id,
		       t.status_id, t.created_at, t.updated_at,
		       s.name AS status_name, p.name AS priority_name, p.color AS priority_color
		FROM tasks t
		LEFT JOIN status s ON t.status_id = s.status_id
		LEFT JOIN priority p ON t.priority_level_id = p.priority_level_id
		ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	return tasks, nil
}

// Update rewrites every column of the row. A missing id is a silent no-op:
// callers must not rely on existence confirmation from this call.
func (r *taskRepo) Update(ctx context.Context, task Task) error {
	defer observeDB(ctx, "tasks.update")()

	if strings.TrimSpace(task.Title) == "" {
		return fmt.Errorf("task title must not be empty")
	}
	if task.StatusID == 0 {
		task.StatusID = StatusIncomplete
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET
			title = ?, description = ?, due_date = ?,
			priority_level_id = ?, status_id = ?, updated_at = ?
		WHERE task_id = ?`,
		task.Title, task.Description, task.DueDate,
		task.PriorityID, task.StatusID, time.Now().UTC(),
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task %d: %w", task.ID, err)
	}
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, id int64) error {
	defer observeDB(ctx, "tasks.delete")()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE task_id = ?`, id); err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	return nil
}

func (r *taskRepo) GetTitle(ctx context.Context, id int64) (string, error) {
	defer observeDB(ctx, "tasks.get_title")()

	var title string
	err := r.db.GetContext(ctx, &title, `SELECT title FROM tasks WHERE task_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("getting task %d title: %w", id, err)
	}
	return title, nil
}
