package store

import "time"

// Item type ids as seeded in the item_types reference table. The audit log
// points at these rather than the mutable entity tables.
const (
	ItemTypeTask  int64 = 1
	ItemTypeEvent int64 = 2
	ItemTypeNote  int64 = 3
)

// Status ids as seeded in the status reference table.
const (
	StatusComplete   int64 = 1
	StatusIncomplete int64 = 2
)

// Task is a to-do item with an optional deadline and priority.
// DueDate is kept as an opaque client-supplied string.
type Task struct {
	ID          int64     `db:"task_id" json:"task_id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	DueDate     *string   `db:"due_date" json:"due_date"`
	PriorityID  *int64    `db:"priority_level_id" json:"priority_level_id"`
	StatusID    int64     `db:"status_id" json:"status_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// TaskListing is a Task joined with its status and priority reference rows
// for display.
type TaskListing struct {
	Task
	StatusName    *string `db:"status_name" json:"status_name"`
	PriorityName  *string `db:"priority_name" json:"priority_name"`
	PriorityColor *string `db:"priority_color" json:"priority_color"`
}

// Event is a calendar entry. Start and end times are opaque client strings.
type Event struct {
	ID          int64     `db:"event_id" json:"event_id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	StartTime   *string   `db:"start_time" json:"start_time"`
	EndTime     *string   `db:"end_time" json:"end_time"`
	PriorityID  *int64    `db:"priority_level_id" json:"priority_level_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Note is a free-form note, optionally tied to a label.
type Note struct {
	ID        int64     `db:"note_id" json:"note_id"`
	Title     *string   `db:"title" json:"title"`
	Content   *string   `db:"content" json:"content"`
	Color     *string   `db:"color" json:"color"`
	LabelID   *int64    `db:"label_id" json:"label_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Label groups notes by name and color.
type Label struct {
	ID        int64     `db:"label_id" json:"label_id"`
	Name      string    `db:"name" json:"name"`
	Color     string    `db:"color" json:"color"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Priority is seeded reference data.
type Priority struct {
	ID    int64  `db:"priority_level_id" json:"priority_level_id"`
	Name  string `db:"name" json:"name"`
	Color string `db:"color" json:"color"`
}

// Status is seeded reference data.
type Status struct {
	ID   int64  `db:"status_id" json:"status_id"`
	Name string `db:"name" json:"name"`
}

// ItemType is seeded reference data targeted by audit entries.
type ItemType struct {
	ID   int64  `db:"item_type_id" json:"item_type_id"`
	Name string `db:"name" json:"name"`
}

// AuditEntry is one append-only history record. ItemName is denormalized at
// write time so the entry stays readable after its subject is deleted.
type AuditEntry struct {
	ID         int64     `db:"log_id" json:"log_id"`
	ActionType string    `db:"action_type" json:"action_type"`
	ItemTypeID int64     `db:"item_type_id" json:"item_type_id"`
	ItemID     int64     `db:"item_id" json:"item_id"`
	ItemName   *string   `db:"item_name" json:"item_name"`
	Time       time.Time `db:"time" json:"time"`
}

// Settings is the singleton user-settings row. The fixed row id is a storage
// detail and never leaves the store.
type Settings struct {
	Theme   string  `db:"theme" json:"theme"`
	PINHash *string `db:"pin_hash" json:"pin_hash"`
}

// SecurityState is the singleton lock-screen state row. LockUntil is epoch
// seconds.
type SecurityState struct {
	IsAuthorized   bool   `db:"is_authorized" json:"is_authorized"`
	FailedAttempts int64  `db:"failed_attempts" json:"failed_attempts"`
	LockUntil      *int64 `db:"lock_until" json:"lock_until"`
}
