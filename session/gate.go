// Package session implements the admin capability gate: one shared
// boolean compared-credentials lock, not an authentication protocol.
// The flag persists until explicit logout or manual storage clearing —
// no tokens, no expiry.
package session

import (
	"crypto/subtle"
	"sync"

	"github.com/rs/zerolog"

	"github.com/aargomedo/astracore-backend/kvstore"
)

// StorageKey is the durable-storage key for the session flag.
const StorageKey = "admin_auth"

type Gate struct {
	mu       sync.Mutex
	store    kvstore.Store
	username string
	password string
	active   bool
	logger   zerolog.Logger
}

// NewGate restores any persisted session flag so a restart does not log
// the operator out.
func NewGate(store kvstore.Store, username, password string, logger zerolog.Logger) *Gate {
	g := &Gate{
		store:    store,
		username: username,
		password: password,
		logger:   logger,
	}
	if v, ok, err := store.Get(StorageKey); err == nil && ok && v == "true" {
		g.active = true
	}
	return g
}

// Login compares both fields against the configured secrets. On match
// the flag is set and persisted; on mismatch nothing is written.
func (g *Gate) Login(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	if !userOK || !passOK {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = true
	if err := g.store.Set(StorageKey, "true"); err != nil {
		g.logger.Error().Err(err).Msg("Failed to persist session flag")
	}
	return true
}

// Logout clears the in-memory and persisted flag unconditionally.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = false
	if err := g.store.Clear(StorageKey); err != nil {
		g.logger.Error().Err(err).Msg("Failed to clear session flag")
	}
}

// Active reports whether the admin session is open.
func (g *Gate) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}
