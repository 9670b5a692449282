package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gitea.jw6.us/james/taskdesk/internal/store"
)

type labelPayload struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// AddLabel creates a label. Labels are not audited.
func (h *Handler) AddLabel(w http.ResponseWriter, r *http.Request) {
	var payload labelPayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, r, err, "Failed to add label")
		return
	}

	id, err := h.store.Labels.Create(r.Context(), store.Label{Name: payload.Name, Color: payload.Color})
	if err != nil {
		respondError(w, r, err, "Failed to add label")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"message": "Label added", "label_id": id})
}

// ListLabels returns all labels wrapped in a labels object.
func (h *Handler) ListLabels(w http.ResponseWriter, r *http.Request) {
	labels, err := h.store.Labels.List(r.Context())
	if err != nil {
		respondError(w, r, err, "Failed to get labels")
		return
	}
	if labels == nil {
		labels = []store.Label{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"labels": labels})
}

// DeleteLabel removes a label and detaches any notes referencing it.
func (h *Handler) DeleteLabel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, r, err, "Failed to delete label")
		return
	}

	if err := h.store.Labels.Delete(r.Context(), id); err != nil {
		respondError(w, r, err, "Failed to delete label")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Label deleted"})
}
