package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"gitea.jw6.us/james/taskdesk/internal/auth"
	"gitea.jw6.us/james/taskdesk/internal/config"
	"gitea.jw6.us/james/taskdesk/internal/store"
)

type testServer struct {
	srv *httptest.Server
	db  *sqlx.DB
	cfg *config.Config
}

func newTestServer(t *testing.T, mutate func(*config.Config)) *testServer {
	t.Helper()

	cfg := &config.Config{ListenAddr: ":0"}
	cfg.Security.MaxPINAttempts = 5
	cfg.Security.Lockout = 5 * time.Minute
	if mutate != nil {
		mutate(cfg)
	}

	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	s := store.New(db)
	t.Cleanup(func() { s.Close() })

	if err := s.Provision(context.Background()); err != nil {
		t.Fatalf("provisioning schema: %v", err)
	}

	gate := auth.NewGate(cfg, s)
	srv := httptest.NewServer(NewRouter(cfg, s, gate))
	t.Cleanup(srv.Close)

	return &testServer{srv: srv, db: db, cfg: cfg}
}

func (ts *testServer) request(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	status, raw := ts.requestRaw(t, method, path, body)
	var decoded map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("%s %s: decoding response %q: %v", method, path, raw, err)
		}
	}
	return status, decoded
}

func (ts *testServer) requestList(t *testing.T, path string) []map[string]any {
	t.Helper()

	status, raw := ts.requestRaw(t, http.MethodGet, path, nil)
	if status != http.StatusOK {
		t.Fatalf("GET %s: status = %d, body %s", path, status, raw)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("GET %s: decoding response %q: %v", path, raw, err)
	}
	return decoded
}

func (ts *testServer) requestRaw(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, ts.srv.URL+path, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	return resp.StatusCode, raw
}

func TestTaskLifecycle(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := ts.request(t, http.MethodPost, "/add-task", map[string]any{"title": "Buy milk"})
	if status != http.StatusOK {
		t.Fatalf("add-task status = %d, body %v", status, body)
	}
	if body["message"] != "Task added" {
		t.Errorf("message = %v, want Task added", body["message"])
	}
	taskID, ok := body["task_id"].(float64)
	if !ok || taskID < 1 {
		t.Fatalf("task_id missing or invalid: %v", body["task_id"])
	}

	tasks := ts.requestList(t, "/tasks")
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0]["title"] != "Buy milk" {
		t.Errorf("title = %v, want Buy milk", tasks[0]["title"])
	}
	if tasks[0]["status_name"] != "incomplete" {
		t.Errorf("status_name = %v, want incomplete", tasks[0]["status_name"])
	}

	status, body = ts.request(t, http.MethodPut, fmt.Sprintf("/tasks/%d", int64(taskID)), map[string]any{
		"title":     "Buy milk",
		"status_id": 1,
	})
	if status != http.StatusOK || body["message"] != "Task updated" {
		t.Fatalf("update status = %d, body %v", status, body)
	}

	status, body = ts.request(t, http.MethodDelete, fmt.Sprintf("/tasks/%d", int64(taskID)), nil)
	if status != http.StatusOK || body["message"] != "Task deleted" {
		t.Fatalf("delete status = %d, body %v", status, body)
	}

	tasks = ts.requestList(t, "/tasks")
	if len(tasks) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(tasks))
	}

	entries := ts.requestList(t, "/audit-log")
	if len(entries) != 3 {
		t.Fatalf("expected 3 audit entries (create, update, delete), got %d", len(entries))
	}
	last := entries[2]
	if last["action_type"] != "delete" {
		t.Errorf("last action = %v, want delete", last["action_type"])
	}
	if last["item_name"] != "Buy milk" {
		t.Errorf("item_name = %v, want Buy milk", last["item_name"])
	}
	if last["item_type_id"] != float64(1) {
		t.Errorf("item_type_id = %v, want 1", last["item_type_id"])
	}
}

func TestDeleteMissingTaskFails(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := ts.request(t, http.MethodDelete, "/tasks/999", nil)
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if body["error"] != "Error finding task" {
		t.Errorf("error = %v, want Error finding task", body["error"])
	}

	// The failed delete must not leave an audit entry behind.
	entries := ts.requestList(t, "/audit-log")
	if len(entries) != 0 {
		t.Fatalf("expected no audit entries, got %d", len(entries))
	}
}

func TestEventAndNoteRoutes(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := ts.request(t, http.MethodPost, "/add-event", map[string]any{
		"title":      "Standup",
		"start_time": "2026-09-01T09:00:00",
	})
	if status != http.StatusOK || body["message"] != "Event added" {
		t.Fatalf("add-event status = %d, body %v", status, body)
	}

	events := ts.requestList(t, "/events")
	if len(events) != 1 || events[0]["title"] != "Standup" {
		t.Fatalf("unexpected events list: %v", events)
	}

	status, body = ts.request(t, http.MethodPost, "/add-note", map[string]any{
		"title":   "Ideas",
		"content": "write more tests",
	})
	if status != http.StatusOK || body["message"] != "Note added" {
		t.Fatalf("add-note status = %d, body %v", status, body)
	}
	noteID := int64(body["note_id"].(float64))

	status, body = ts.request(t, http.MethodDelete, fmt.Sprintf("/notes/%d", noteID), nil)
	if status != http.StatusOK || body["message"] != "Note deleted" {
		t.Fatalf("delete note status = %d, body %v", status, body)
	}

	entries := ts.requestList(t, "/audit-log")
	var noteDeletes int
	for _, e := range entries {
		if e["action_type"] == "delete" && e["item_type_id"] == float64(3) {
			noteDeletes++
			if e["item_name"] != "Ideas" {
				t.Errorf("note delete item_name = %v, want Ideas", e["item_name"])
			}
		}
	}
	if noteDeletes != 1 {
		t.Errorf("expected exactly 1 note delete entry, got %d", noteDeletes)
	}
}

func TestLabelRoutes(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := ts.request(t, http.MethodPost, "/add-label", map[string]any{
		"name":  "work",
		"color": "#ff0000",
	})
	if status != http.StatusOK || body["message"] != "Label added" {
		t.Fatalf("add-label status = %d, body %v", status, body)
	}
	labelID := int64(body["label_id"].(float64))

	status, body = ts.request(t, http.MethodGet, "/labels", nil)
	if status != http.StatusOK {
		t.Fatalf("labels status = %d", status)
	}
	labels, ok := body["labels"].([]any)
	if !ok || len(labels) != 1 {
		t.Fatalf("labels payload = %v, want wrapped list of 1", body)
	}

	status, body = ts.request(t, http.MethodDelete, fmt.Sprintf("/labels/%d", labelID), nil)
	if status != http.StatusOK || body["message"] != "Label deleted" {
		t.Fatalf("delete label status = %d, body %v", status, body)
	}

	// Labels are not audited.
	entries := ts.requestList(t, "/audit-log")
	if len(entries) != 0 {
		t.Fatalf("label operations wrote audit entries: %v", entries)
	}
}

func TestPrioritiesRoute(t *testing.T) {
	ts := newTestServer(t, nil)

	priorities := ts.requestList(t, "/priorities")
	if len(priorities) != 4 {
		t.Fatalf("expected 4 priorities, got %d", len(priorities))
	}
}

func TestManualAuditRoute(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := ts.request(t, http.MethodPost, "/add-audit-log", map[string]any{
		"action_type":  "create",
		"item_type_id": 1,
		"item_id":      42,
		"item_name":    "imported",
	})
	if status != http.StatusOK || body["message"] != "Log entry added" {
		t.Fatalf("add-audit-log status = %d, body %v", status, body)
	}
	if _, ok := body["log_id"].(float64); !ok {
		t.Fatalf("log_id missing: %v", body)
	}

	entries := ts.requestList(t, "/audit-log")
	if len(entries) != 1 || entries[0]["item_name"] != "imported" {
		t.Fatalf("unexpected audit entries: %v", entries)
	}
}

func TestSettingsRoutes(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := ts.request(t, http.MethodGet, "/settings", nil)
	if status != http.StatusOK || body["theme"] != "green" {
		t.Fatalf("settings status = %d, body %v", status, body)
	}

	status, body = ts.request(t, http.MethodPut, "/settings", map[string]any{"theme": "dark"})
	if status != http.StatusOK || body["message"] != "Settings updated" {
		t.Fatalf("update settings status = %d, body %v", status, body)
	}

	status, body = ts.request(t, http.MethodGet, "/settings", nil)
	if status != http.StatusOK || body["theme"] != "dark" {
		t.Fatalf("settings after update = %v", body)
	}
}

func TestSecurityRoutes(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := ts.request(t, http.MethodGet, "/security/state", nil)
	if status != http.StatusOK {
		t.Fatalf("security state status = %d", status)
	}
	if body["is_authorized"] != false {
		t.Errorf("is_authorized = %v, want false", body["is_authorized"])
	}

	status, body = ts.request(t, http.MethodPost, "/security/pin", map[string]any{"pin": "1234"})
	if status != http.StatusOK || body["message"] != "PIN set" {
		t.Fatalf("set pin status = %d, body %v", status, body)
	}

	status, body = ts.request(t, http.MethodPost, "/security/verify", map[string]any{"pin": "0000"})
	if status != http.StatusOK || body["success"] != false {
		t.Fatalf("wrong pin status = %d, body %v", status, body)
	}

	status, body = ts.request(t, http.MethodPost, "/security/verify", map[string]any{"pin": "1234"})
	if status != http.StatusOK || body["success"] != true {
		t.Fatalf("correct pin status = %d, body %v", status, body)
	}

	status, body = ts.request(t, http.MethodGet, "/security/state", nil)
	if status != http.StatusOK || body["is_authorized"] != true {
		t.Fatalf("state after verify = %v", body)
	}

	status, body = ts.request(t, http.MethodPost, "/security/update", map[string]any{
		"is_authorized":   false,
		"failed_attempts": 0,
	})
	if status != http.StatusOK || body["success"] != true {
		t.Fatalf("security update status = %d, body %v", status, body)
	}
}

func TestAuditFailureDoesNotFailRequest(t *testing.T) {
	ts := newTestServer(t, nil)

	// Break only the audit trail; the primary mutation must still succeed.
	if _, err := ts.db.Exec("DROP TABLE audit_log"); err != nil {
		t.Fatalf("dropping audit_log: %v", err)
	}

	status, body := ts.request(t, http.MethodPost, "/add-task", map[string]any{"title": "Buy milk"})
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200 when audit write fails, body %v", status, body)
	}

	tasks := ts.requestList(t, "/tasks")
	if len(tasks) != 1 {
		t.Fatalf("task not persisted despite audit failure")
	}
}

func TestAuditFailureFailsRequestInStrictMode(t *testing.T) {
	ts := newTestServer(t, func(cfg *config.Config) {
		cfg.Audit.Strict = true
	})

	if _, err := ts.db.Exec("DROP TABLE audit_log"); err != nil {
		t.Fatalf("dropping audit_log: %v", err)
	}

	status, body := ts.request(t, http.MethodPost, "/add-task", map[string]any{"title": "Buy milk"})
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 in strict mode, body %v", status, body)
	}
	if body["error"] != "Failed to record audit entry" {
		t.Errorf("error = %v, want Failed to record audit entry", body["error"])
	}
}

func TestErrorsAreGeneric500s(t *testing.T) {
	ts := newTestServer(t, nil)

	status, body := ts.request(t, http.MethodPost, "/add-task", map[string]any{})
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 for missing title", status)
	}
	if body["error"] != "Failed to add task" {
		t.Errorf("error = %v, want Failed to add task", body["error"])
	}

	status, body = ts.request(t, http.MethodPut, "/tasks/notanumber", map[string]any{"title": "x"})
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 for bad id", status)
	}
	if _, ok := body["error"]; !ok {
		t.Errorf("missing error key in body %v", body)
	}
}

func TestHealthAndReadiness(t *testing.T) {
	ts := newTestServer(t, nil)

	status, raw := ts.requestRaw(t, http.MethodGet, "/healthz", nil)
	if status != http.StatusOK || string(raw) != "ok" {
		t.Fatalf("healthz = %d %q", status, raw)
	}

	status, _ = ts.requestRaw(t, http.MethodGet, "/readyz", nil)
	if status != http.StatusOK {
		t.Fatalf("readyz = %d, want 200", status)
	}
}

func TestCORSHeaders(t *testing.T) {
	ts := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodGet, ts.srv.URL+"/tasks", nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Origin", "http://localhost:5173")

	resp, err := ts.srv.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
