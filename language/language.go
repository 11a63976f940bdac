// Package language holds the two-valued display language shared by
// every view. Spanish is primary; English is secondary. The preference
// is an explicit injected observable rather than an ambient global:
// views subscribe on mount and unsubscribe on unmount.
package language

import (
	"sync"

	"github.com/aargomedo/astracore-backend/kvstore"
)

type Lang string

const (
	ES Lang = "ES"
	EN Lang = "EN"
)

// StorageKey is the durable-storage key, kept from the original site.
const StorageKey = "app_lang"

type Preference struct {
	mu      sync.Mutex
	store   kvstore.Store
	current Lang
	subs    map[int]func(Lang)
	nextID  int
}

// New reads the persisted preference once, defaulting to ES when absent
// or unrecognized.
func New(store kvstore.Store) *Preference {
	current := ES
	if v, ok, err := store.Get(StorageKey); err == nil && ok && Lang(v) == EN {
		current = EN
	}
	return &Preference{
		store:   store,
		current: current,
		subs:    make(map[int]func(Lang)),
	}
}

func (p *Preference) Get() Lang {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Set persists the preference and notifies every subscriber
// synchronously before returning.
func (p *Preference) Set(lang Lang) error {
	if lang != ES && lang != EN {
		lang = ES
	}

	p.mu.Lock()
	p.current = lang
	err := p.store.Set(StorageKey, string(lang))
	notify := make([]func(Lang), 0, len(p.subs))
	for _, fn := range p.subs {
		notify = append(notify, fn)
	}
	p.mu.Unlock()

	for _, fn := range notify {
		fn(lang)
	}
	return err
}

// Toggle flips between the two languages and returns the new value.
func (p *Preference) Toggle() (Lang, error) {
	next := ES
	if p.Get() == ES {
		next = EN
	}
	return next, p.Set(next)
}

// Subscribe registers fn for synchronous notification on every change
// and returns the unsubscribe func the caller ties to its lifecycle.
func (p *Preference) Subscribe(fn func(Lang)) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}
