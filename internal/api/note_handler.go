package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gitea.jw6.us/james/taskdesk/internal/store"
)

type notePayload struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Color   *string `json:"color"`
	LabelID *int64  `json:"label_id"`
}

func (p notePayload) toNote() store.Note {
	return store.Note{
		Title:   p.Title,
		Content: p.Content,
		Color:   p.Color,
		LabelID: p.LabelID,
	}
}

// AddNote creates a note and audits the creation.
func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	var payload notePayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, r, err, "Failed to add note")
		return
	}

	id, err := h.store.Notes.Create(r.Context(), payload.toNote())
	if err != nil {
		respondError(w, r, err, "Failed to add note")
		return
	}

	if err := h.recordAudit(r, "create", store.ItemTypeNote, id, payload.Title); err != nil {
		respondError(w, r, err, "Failed to record audit entry")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"message": "Note added", "note_id": id})
}

// ListNotes returns all notes.
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.store.Notes.List(r.Context())
	if err != nil {
		respondError(w, r, err, "Failed to get notes")
		return
	}
	if notes == nil {
		notes = []store.Note{}
	}
	respondJSON(w, http.StatusOK, notes)
}

// UpdateNote rewrites a note row and audits the update.
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, r, err, "Failed to update note")
		return
	}

	var payload notePayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, r, err, "Failed to update note")
		return
	}

	note := payload.toNote()
	note.ID = id
	if err := h.store.Notes.Update(r.Context(), note); err != nil {
		respondError(w, r, err, "Failed to update note")
		return
	}

	if err := h.recordAudit(r, "update", store.ItemTypeNote, id, payload.Title); err != nil {
		respondError(w, r, err, "Failed to record audit entry")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Note updated"})
}

// DeleteNote captures the note's title for the audit trail, then deletes it.
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, r, err, "Failed to delete note")
		return
	}

	title, err := h.store.Notes.GetTitle(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "Error finding note")
		return
	}

	if err := h.store.Notes.Delete(r.Context(), id); err != nil {
		respondError(w, r, err, "Failed to delete note")
		return
	}

	if err := h.recordAudit(r, "delete", store.ItemTypeNote, id, &title); err != nil {
		respondError(w, r, err, "Failed to record audit entry")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Note deleted"})
}
