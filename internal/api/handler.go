package api

import (
	"encoding/json"
	"net/http"

	"gitea.jw6.us/james/taskdesk/internal/auth"
	"gitea.jw6.us/james/taskdesk/internal/config"
	httperrors "gitea.jw6.us/james/taskdesk/internal/http/errors"
	"gitea.jw6.us/james/taskdesk/internal/store"
)

// Handler translates HTTP requests into store and gate calls. It is
// stateless: every request is an independent read-modify-log-respond
// sequence with no cross-request memory beyond the database.
type Handler struct {
	cfg   *config.Config
	store *store.Store
	gate  *auth.Gate
}

func NewHandler(cfg *config.Config, s *store.Store, gate *auth.Gate) *Handler {
	return &Handler{cfg: cfg, store: s, gate: gate}
}

// respondJSON writes the payload with the given status code.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError logs the underlying error server-side and sends a fixed
// message with a 500 status. Raw error detail never reaches the client.
func respondError(w http.ResponseWriter, r *http.Request, err error, message string) {
	httperrors.LogError(r, message, err)
	respondJSON(w, http.StatusInternalServerError, map[string]string{"error": message})
}

// decodeJSON parses the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
