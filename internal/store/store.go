package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Store aggregates repositories backed by a single SQLite database handle.
type Store struct {
	db *sqlx.DB

	Tasks     TaskRepository
	Events    EventRepository
	Notes     NoteRepository
	Labels    LabelRepository
	Reference ReferenceRepository
	AuditLog  AuditLogRepository
	Settings  SettingsRepository
	Security  SecurityRepository
}

// New wires concrete repository implementations with the shared handle.
func New(db *sqlx.DB) *Store {
	return &Store{
		db:        db,
		Tasks:     &taskRepo{db: db},
		Events:    &eventRepo{db: db},
		Notes:     &noteRepo{db: db},
		Labels:    &labelRepo{db: db},
		Reference: &referenceRepo{db: db},
		AuditLog:  &auditLogRepo{db: db},
		Settings:  &settingsRepo{db: db},
		Security:  &securityRepo{db: db},
	}
}

// HealthCheck verifies that the underlying database is reachable.
func (s *Store) HealthCheck(ctx context.Context) error {
	defer observeDB(ctx, "db.healthcheck")()
	return s.db.PingContext(ctx)
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
