package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// securityRepo accesses the singleton security_state row.
type securityRepo struct {
	db *sqlx.DB
}

func (r *securityRepo) Get(ctx context.Context) (*SecurityState, error) {
	defer observeDB(ctx, "security.get")()

	var state SecurityState
	err := r.db.GetContext(ctx, &state,
		`SELECT is_authorized, failed_attempts, lock_until FROM security_state WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting security state: %w", err)
	}
	return &state, nil
}

// Update overwrites all fields of the singleton row.
func (r *securityRepo) Update(ctx context.Context, state SecurityState) error {
	defer observeDB(ctx, "security.update")()

	_, err := r.db.ExecContext(ctx,
		`UPDATE security_state SET is_authorized = ?, failed_attempts = ?, lock_until = ? WHERE id = 1`,
		boolToInt(state.IsAuthorized), state.FailedAttempts, state.LockUntil,
	)
	if err != nil {
		return fmt.Errorf("updating security state: %w", err)
	}
	return nil
}

// boolToInt converts a boolean to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
