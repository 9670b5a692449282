package api

import (
	"net/http"

	httperrors "gitea.jw6.us/james/taskdesk/internal/http/errors"
	"gitea.jw6.us/james/taskdesk/internal/metrics"
	"gitea.jw6.us/james/taskdesk/internal/store"
)

// recordAudit appends one audit entry for a successful mutation. By default a
// failed write is logged and swallowed so the primary action's success still
// reaches the client; in strict mode the error is returned and the request
// fails.
func (h *Handler) recordAudit(r *http.Request, actionType string, itemTypeID, itemID int64, itemName *string) error {
	_, err := h.store.AuditLog.Record(r.Context(), store.AuditEntry{
		ActionType: actionType,
		ItemTypeID: itemTypeID,
		ItemID:     itemID,
		ItemName:   itemName,
	})
	if err == nil {
		return nil
	}

	metrics.CountAuditWriteFailure()
	if h.cfg.Audit.Strict {
		return err
	}
	httperrors.LogError(r, "audit log write failed", err)
	return nil
}
