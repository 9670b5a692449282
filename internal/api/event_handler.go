package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gitea.jw6.us/james/taskdesk/internal/store"
)

type eventPayload struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	PriorityID  *int64  `json:"priority_level_id"`
}

func (p eventPayload) toEvent() store.Event {
	return store.Event{
		Title:       p.Title,
		Description: p.Description,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		PriorityID:  p.PriorityID,
	}
}

// AddEvent creates an event and audits the creation.
func (h *Handler) AddEvent(w http.ResponseWriter, r *http.Request) {
	var payload eventPayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, r, err, "Failed to add event")
		return
	}

	id, err := h.store.Events.Create(r.Context(), payload.toEvent())
	if err != nil {
		respondError(w, r, err, "Failed to add event")
		return
	}

	if err := h.recordAudit(r, "create", store.ItemTypeEvent, id, &payload.Title); err != nil {
		respondError(w, r, err, "Failed to record audit entry")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"message": "Event added", "event_id": id})
}

// ListEvents returns all events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.Events.List(r.Context())
	if err != nil {
		respondError(w, r, err, "Failed to get events")
		return
	}
	if events == nil {
		events = []store.Event{}
	}
	respondJSON(w, http.StatusOK, events)
}

// UpdateEvent rewrites an event row and audits the update.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, r, err, "Failed to update event")
		return
	}

	var payload eventPayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, r, err, "Failed to update event")
		return
	}

	event := payload.toEvent()
	event.ID = id
	if err := h.store.Events.Update(r.Context(), event); err != nil {
		respondError(w, r, err, "Failed to update event")
		return
	}

	if err := h.recordAudit(r, "update", store.ItemTypeEvent, id, &payload.Title); err != nil {
		respondError(w, r, err, "Failed to record audit entry")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Event updated"})
}

// DeleteEvent captures the event's title for the audit trail, then deletes it.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, r, err, "Failed to delete event")
		return
	}

	title, err := h.store.Events.GetTitle(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "Error finding event")
		return
	}

	if err := h.store.Events.Delete(r.Context(), id); err != nil {
		respondError(w, r, err, "Failed to delete event")
		return
	}

	if err := h.recordAudit(r, "delete", store.ItemTypeEvent, id, &title); err != nil {
		respondError(w, r, err, "Failed to record audit entry")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Event deleted"})
}
