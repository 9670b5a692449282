package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// settingsRepo accesses the singleton user_settings row.
type settingsRepo struct {
	db *sqlx.DB
}

func (r *settingsRepo) Get(ctx context.Context) (*Settings, error) {
	defer observeDB(ctx, "settings.get")()

	var settings Settings
	err := r.db.GetContext(ctx, &settings,
		`SELECT theme, pin_hash FROM user_settings WHERE setting_id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}
	return &settings, nil
}

// Update overwrites all fields of the singleton row. Callers supply the
// complete desired state, not a delta.
func (r *settingsRepo) Update(ctx context.Context, settings Settings) error {
	defer observeDB(ctx, "settings.update")()

	_, err := r.db.ExecContext(ctx,
		`UPDATE user_settings SET theme = ?, pin_hash = ? WHERE setting_id = 1`,
		settings.Theme, settings.PINHash,
	)
	if err != nil {
		return fmt.Errorf("updating settings: %w", err)
	}
	return nil
}
