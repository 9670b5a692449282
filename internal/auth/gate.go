package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gitea.jw6.us/james/taskdesk/internal/config"
	"gitea.jw6.us/james/taskdesk/internal/store"
)

// ErrPINNotSet indicates verification was attempted before any PIN was stored.
var ErrPINNotSet = errors.New("no pin configured")

// Gate owns the lock-screen state: the stored PIN hash in settings and the
// singleton security_state row with its failed-attempt counter and lockout.
type Gate struct {
	cfg   *config.Config
	store *store.Store
}

func NewGate(cfg *config.Config, s *store.Store) *Gate {
	return &Gate{cfg: cfg, store: s}
}

// VerifyResult reports the outcome of a PIN check.
type VerifyResult struct {
	Success   bool   `json:"success"`
	Locked    bool   `json:"locked"`
	LockUntil *int64 `json:"lock_until,omitempty"`
}

// ResetOnStartup forces is_authorized to false so every process run starts
// unauthenticated. failed_attempts and lock_until are left untouched.
func (g *Gate) ResetOnStartup(ctx context.Context) error {
	state, err := g.store.Security.Get(ctx)
	if err != nil {
		return fmt.Errorf("reading security state: %w", err)
	}
	state.IsAuthorized = false
	if err := g.store.Security.Update(ctx, *state); err != nil {
		return fmt.Errorf("resetting authorization: %w", err)
	}
	return nil
}

// SetPIN hashes the PIN with bcrypt and stores it in the settings row,
// preserving the current theme.
func (g *Gate) SetPIN(ctx context.Context, pin string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing pin: %w", err)
	}

	settings, err := g.store.Settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	hashStr := string(hash)
	settings.PINHash = &hashStr
	if err := g.store.Settings.Update(ctx, *settings); err != nil {
		return fmt.Errorf("storing pin hash: %w", err)
	}
	return nil
}

// VerifyPIN compares the PIN against the stored hash. A match authorizes the
// session and clears the counters. A mismatch increments failed_attempts and,
// once the configured maximum is reached, sets lock_until. While locked,
// verification is refused without consulting the hash.
func (g *Gate) VerifyPIN(ctx context.Context, pin string) (VerifyResult, error) {
	state, err := g.store.Security.Get(ctx)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("reading security state: %w", err)
	}

	now := time.Now().Unix()
	if state.LockUntil != nil && *state.LockUntil > now {
		return VerifyResult{Locked: true, LockUntil: state.LockUntil}, nil
	}

	settings, err := g.store.Settings.Get(ctx)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("reading settings: %w", err)
	}
	if settings.PINHash == nil {
		return VerifyResult{}, ErrPINNotSet
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*settings.PINHash), []byte(pin)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return VerifyResult{}, fmt.Errorf("comparing pin hash: %w", err)
		}

		state.IsAuthorized = false
		state.FailedAttempts++
		result := VerifyResult{}
		if state.FailedAttempts >= int64(g.cfg.Security.MaxPINAttempts) {
			lockUntil := now + int64(g.cfg.Security.Lockout.Seconds())
			state.LockUntil = &lockUntil
			result.Locked = true
			result.LockUntil = &lockUntil
		}
		if err := g.store.Security.Update(ctx, *state); err != nil {
			return VerifyResult{}, fmt.Errorf("recording failed attempt: %w", err)
		}
		return result, nil
	}

	state.IsAuthorized = true
	state.FailedAttempts = 0
	state.LockUntil = nil
	if err := g.store.Security.Update(ctx, *state); err != nil {
		return VerifyResult{}, fmt.Errorf("storing authorized state: %w", err)
	}
	return VerifyResult{Success: true}, nil
}
