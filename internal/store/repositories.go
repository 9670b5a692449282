package store

import "context"

// TaskRepository handles task persistence.
type TaskRepository interface {
	Create(ctx context.Context, task Task) (int64, error)
	List(ctx context.Context) ([]TaskListing, error)
	Update(ctx context.Context, task Task) error
	Delete(ctx context.Context, id int64) error
	GetTitle(ctx context.Context, id int64) (string, error)
}

// EventRepository handles event persistence.
type EventRepository interface {
	Create(ctx context.Context, event Event) (int64, error)
	List(ctx context.Context) ([]Event, error)
	Update(ctx context.Context, event Event) error
	Delete(ctx context.Context, id int64) error
	GetTitle(ctx context.Context, id int64) (string, error)
}

// NoteRepository handles note persistence.
type NoteRepository interface {
	Create(ctx context.Context, note Note) (int64, error)
	List(ctx context.Context) ([]Note, error)
	Update(ctx context.Context, note Note) error
	Delete(ctx context.Context, id int64) error
	GetTitle(ctx context.Context, id int64) (string, error)
}

// LabelRepository handles labels. Delete nulls label_id on dependent notes.
type LabelRepository interface {
	Create(ctx context.Context, label Label) (int64, error)
	List(ctx context.Context) ([]Label, error)
	Delete(ctx context.Context, id int64) error
}

// ReferenceRepository reads the seeded lookup tables.
type ReferenceRepository interface {
	ListPriorities(ctx context.Context) ([]Priority, error)
	ListStatuses(ctx context.Context) ([]Status, error)
	ListItemTypes(ctx context.Context) ([]ItemType, error)
}

// AuditLogRepository appends and lists audit history.
type AuditLogRepository interface {
	Record(ctx context.Context, entry AuditEntry) (int64, error)
	List(ctx context.Context) ([]AuditEntry, error)
}

// SettingsRepository accesses the singleton user_settings row.
// Update is a full overwrite of all fields.
type SettingsRepository interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, settings Settings) error
}

// SecurityRepository accesses the singleton security_state row.
// Update is a full overwrite of all fields.
type SecurityRepository interface {
	Get(ctx context.Context) (*SecurityState, error)
	Update(ctx context.Context, state SecurityState) error
}
