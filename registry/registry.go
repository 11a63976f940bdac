// Package registry is the operator's editable portfolio list. It never
// touches the hosted database: the whole registry round-trips as one
// JSON snapshot in the local key-value store, seeded with the default
// project set on first load.
package registry

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/aargomedo/astracore-backend/kvstore"
	"github.com/aargomedo/astracore-backend/models"
)

// StorageKey is versioned so a future snapshot-shape change can migrate
// instead of misparse.
const StorageKey = "portfolio_projects_v1"

type Registry struct {
	mu       sync.Mutex
	store    kvstore.Store
	projects []models.Project
	logger   zerolog.Logger
}

// New loads the persisted snapshot, or seeds and persists the default
// set when no snapshot exists. A corrupt snapshot is treated like a
// missing one, with a logged diagnostic.
func New(store kvstore.Store, seed []models.Project, logger zerolog.Logger) (*Registry, error) {
	r := &Registry{store: store, logger: logger}

	raw, ok, err := store.Get(StorageKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &r.projects); err == nil {
			return r, nil
		}
		logger.Warn().Msg("Discarding unreadable project snapshot, reseeding")
	}

	r.projects = make([]models.Project, len(seed))
	copy(r.projects, seed)
	if err := r.persistLocked(); err != nil {
		return nil, err
	}
	return r, nil
}

// All returns a copy of the registry in stored order.
func (r *Registry) All() []models.Project {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Project, len(r.projects))
	copy(out, r.projects)
	return out
}

// Find returns the project with the given ID, if present.
func (r *Registry) Find(id string) (models.Project, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// Update replaces the entry whose ID matches, leaving all others and
// their order unchanged, and persists the full snapshot synchronously.
// A miss is a no-op: nothing is written and false is returned.
func (r *Registry) Update(updated models.Project) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.projects {
		if p.ID == updated.ID {
			r.projects[i] = updated
			return true, r.persistLocked()
		}
	}
	return false, nil
}

func (r *Registry) persistLocked() error {
	raw, err := json.Marshal(r.projects)
	if err != nil {
		return err
	}
	return r.store.Set(StorageKey, string(raw))
}
