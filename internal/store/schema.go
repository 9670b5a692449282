package store

import (
	"context"
	"fmt"
)

// droppedTables lists every table removed by Teardown, dependents first.
var droppedTables = []string{
	"audit_log",
	"tasks",
	"events",
	"notes",
	"labels",
	"user_settings",
	"security_state",
	"priority",
	"status",
	"item_types",
	"schema_migrations",
}

// Provision creates the schema and seed rows. Safe to call on every startup.
func (s *Store) Provision(ctx context.Context) error {
	defer observeDB(ctx, "db.provision")()
	return ApplyMigrations(ctx, s.db)
}

// Teardown drops every table unconditionally. For reset and testing only.
func (s *Store) Teardown(ctx context.Context) error {
	defer observeDB(ctx, "db.teardown")()
	for _, table := range droppedTables {
		if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("dropping %s: %w", table, err)
		}
	}
	return nil
}
