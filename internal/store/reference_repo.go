package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// referenceRepo reads the seeded lookup tables. They are never mutated after
// provisioning.
type referenceRepo struct {
	db *sqlx.DB
}

func (r *referenceRepo) ListPriorities(ctx context.Context) ([]Priority, error) {
	defer observeDB(ctx, "reference.priorities")()

	var priorities []Priority
	if err := r.db.SelectContext(ctx, &priorities, `SELECT * FROM priority`); err != nil {
		return nil, fmt.Errorf("querying priorities: %w", err)
	}
	return priorities, nil
}

func (r *referenceRepo) ListStatuses(ctx context.Context) ([]Status, error) {
	defer observeDB(ctx, "reference.statuses")()

	var statuses []Status
	if err := r.db.SelectContext(ctx, &statuses, `SELECT * FROM status`); err != nil {
		return nil, fmt.Errorf("querying statuses: %w", err)
	}
	return statuses, nil
}

func (r *referenceRepo) ListItemTypes(ctx context.Context) ([]ItemType, error) {
	defer observeDB(ctx, "reference.item_types")()

	var types []ItemType
	if err := r.db.SelectContext(ctx, &types, `SELECT * FROM item_types`); err != nil {
		return nil, fmt.Errorf("querying item types: %w", err)
	}
	return types, nil
}
