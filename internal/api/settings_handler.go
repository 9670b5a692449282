package api

import (
	"net/http"

	"gitea.jw6.us/james/taskdesk/internal/store"
)

// GetSettings returns the singleton settings row.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.Settings.Get(r.Context())
	if err != nil {
		respondError(w, r, err, "Failed to get settings")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// UpdateSettings overwrites the singleton settings row. The body must carry
// the complete desired state.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings store.Settings
	if err := decodeJSON(r, &settings); err != nil {
		respondError(w, r, err, "Failed to update settings")
		return
	}

	if err := h.store.Settings.Update(r.Context(), settings); err != nil {
		respondError(w, r, err, "Failed to update settings")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Settings updated"})
}
