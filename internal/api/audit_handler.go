package api

import (
	"net/http"

	"gitea.jw6.us/james/taskdesk/internal/store"
)

type auditPayload struct {
	ActionType string  `json:"action_type"`
	ItemTypeID int64   `json:"item_type_id"`
	ItemID     int64   `json:"item_id"`
	ItemName   *string `json:"item_name"`
}

// AddAuditEntry appends a manual audit log entry.
func (h *Handler) AddAuditEntry(w http.ResponseWriter, r *http.Request) {
	var payload auditPayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, r, err, "Failed to add audit log entry")
		return
	}

	id, err := h.store.AuditLog.Record(r.Context(), store.AuditEntry{
		ActionType: payload.ActionType,
		ItemTypeID: payload.ItemTypeID,
		ItemID:     payload.ItemID,
		ItemName:   payload.ItemName,
	})
	if err != nil {
		respondError(w, r, err, "Failed to add audit log entry")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"message": "Log entry added", "log_id": id})
}

// ListAuditEntries returns the full audit history in insertion order.
func (h *Handler) ListAuditEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.AuditLog.List(r.Context())
	if err != nil {
		respondError(w, r, err, "Failed to get audit log")
		return
	}
	if entries == nil {
		entries = []store.AuditEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}
