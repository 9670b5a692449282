package api

import (
	"fmt"
	"net/http"
	"strings"

	"gitea.jw6.us/james/taskdesk/internal/store"
)

type pinPayload struct {
	PIN string `json:"pin"`
}

// GetSecurityState returns the singleton security state row.
func (h *Handler) GetSecurityState(w http.ResponseWriter, r *http.Request) {
	state, err := h.store.Security.Get(r.Context())
	if err != nil {
		respondError(w, r, err, "Failed to get security state")
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// UpdateSecurityState overwrites the singleton security state row.
func (h *Handler) UpdateSecurityState(w http.ResponseWriter, r *http.Request) {
	var state store.SecurityState
	if err := decodeJSON(r, &state); err != nil {
		respondError(w, r, err, "Failed to update security state")
		return
	}

	if err := h.store.Security.Update(r.Context(), state); err != nil {
		respondError(w, r, err, "Failed to update security state")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// SetPIN hashes and stores the lock-screen PIN.
func (h *Handler) SetPIN(w http.ResponseWriter, r *http.Request) {
	var payload pinPayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, r, err, "Failed to set PIN")
		return
	}
	if strings.TrimSpace(payload.PIN) == "" {
		respondError(w, r, fmt.Errorf("empty pin"), "Failed to set PIN")
		return
	}

	if err := h.gate.SetPIN(r.Context(), payload.PIN); err != nil {
		respondError(w, r, err, "Failed to set PIN")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "PIN set"})
}

// VerifyPIN checks the PIN against the stored hash, maintaining the
// failed-attempt counter and lockout.
func (h *Handler) VerifyPIN(w http.ResponseWriter, r *http.Request) {
	var payload pinPayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, r, err, "Failed to verify PIN")
		return
	}

	result, err := h.gate.VerifyPIN(r.Context(), payload.PIN)
	if err != nil {
		respondError(w, r, err, "Failed to verify PIN")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
