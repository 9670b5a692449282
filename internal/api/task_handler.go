package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gitea.jw6.us/james/taskdesk/internal/store"
)

type taskPayload struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	PriorityID  *int64  `json:"priority_level_id"`
	StatusID    int64   `json:"status_id"`
}

func (p taskPayload) toTask() store.Task {
	return store.Task{
		Title:       p.Title,
		Description: p.Description,
		DueDate:     p.DueDate,
		PriorityID:  p.PriorityID,
		StatusID:    p.StatusID,
	}
}

// AddTask creates a task and audits the creation.
func (h *Handler) AddTask(w http.ResponseWriter, r *http.Request) {
	var payload taskPayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, r, err, "Failed to add task")
		return
	}

	id, err := h.store.Tasks.Create(r.Context(), payload.toTask())
	if err != nil {
		respondError(w, r, err, "Failed to add task")
		return
	}

	if err := h.recordAudit(r, "create", store.ItemTypeTask, id, &payload.Title); err != nil {
		respondError(w, r, err, "Failed to record audit entry")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"message": "Task added", "task_id": id})
}

// ListTasks returns all tasks joined with status and priority data, newest first.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.Tasks.List(r.Context())
	if err != nil {
		respondError(w, r, err, "Failed to get tasks")
		return
	}
	if tasks == nil {
		tasks = []store.TaskListing{}
	}
	respondJSON(w, http.StatusOK, tasks)
}

// UpdateTask rewrites a task row and audits the update.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, r, err, "Failed to update task")
		return
	}

	var payload taskPayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, r, err, "Failed to update task")
		return
	}

	task := payload.toTask()
	task.ID = id
	if err := h.store.Tasks.Update(r.Context(), task); err != nil {
		respondError(w, r, err, "Failed to update task")
		return
	}

	if err := h.recordAudit(r, "update", store.ItemTypeTask, id, &payload.Title); err != nil {
		respondError(w, r, err, "Failed to record audit entry")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Task updated"})
}

// DeleteTask captures the task's title for the audit trail, then deletes it.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, r, err, "Failed to delete task")
		return
	}

	title, err := h.store.Tasks.GetTitle(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "Error finding task")
		return
	}

	if err := h.store.Tasks.Delete(r.Context(), id); err != nil {
		respondError(w, r, err, "Failed to delete task")
		return
	}

	if err := h.recordAudit(r, "delete", store.ItemTypeTask, id, &title); err != nil {
		respondError(w, r, err, "Failed to record audit entry")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}
