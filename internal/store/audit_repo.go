package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// auditLogRepo implements AuditLogRepository. Entries are append-only: the
// system never updates or deletes them.
type auditLogRepo struct {
	db *sqlx.DB
}

func (r *auditLogRepo) Record(ctx context.Context, entry AuditEntry) (int64, error) {
	defer observeDB(ctx, "audit_log.record")()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_log (action_type, item_type_id, item_id, item_name, time)
		VALUES (?, ?, ?, ?, ?)`,
		entry.ActionType, entry.ItemTypeID, entry.ItemID, entry.ItemName, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("recording audit entry: %w", err)
	}
	return res.LastInsertId()
}

func (r *auditLogRepo) List(ctx context.Context) ([]AuditEntry, error) {
	defer observeDB(ctx, "audit_log.list")()

	var entries []AuditEntry
	if err := r.db.SelectContext(ctx, &entries, `SELECT * FROM audit_log ORDER BY log_id`); err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	return entries, nil
}
