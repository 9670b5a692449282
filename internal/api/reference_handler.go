package api

import (
	"net/http"

	"gitea.jw6.us/james/taskdesk/internal/store"
)

// ListPriorities returns the seeded priority levels.
func (h *Handler) ListPriorities(w http.ResponseWriter, r *http.Request) {
	priorities, err := h.store.Reference.ListPriorities(r.Context())
	if err != nil {
		respondError(w, r, err, "Failed to get priorities")
		return
	}
	if priorities == nil {
		priorities = []store.Priority{}
	}
	respondJSON(w, http.StatusOK, priorities)
}
