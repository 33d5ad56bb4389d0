package device

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"carmarket-backend/internal/application/auth"
	"carmarket-backend/internal/application/cart"
	"carmarket-backend/internal/application/favorites"
	"carmarket-backend/internal/application/messages"
	"carmarket-backend/internal/application/profile"
	"carmarket-backend/internal/application/savedsearches"
	"carmarket-backend/internal/infrastructure/snapshot"

	"github.com/rs/zerolog/log"
)

// ErrStateUnavailable wraps a failed restore of a device container.
var ErrStateUnavailable = errors.New("device state unavailable")

// Namespaces are the snapshot namespaces a container restores from.
var Namespaces = []string{
	snapshot.NamespaceSavedSearches,
	snapshot.NamespaceFavorites,
	snapshot.NamespaceCart,
	snapshot.NamespaceAuth,
	snapshot.NamespaceDirectMessages,
	snapshot.NamespaceProfile,
}

// Container is the state of one device. Each member guards itself, so every
// piece of state has a single mutator at a time.
type Container struct {
	Owner         string
	SavedSearches *savedsearches.Registry
	Favorites     *favorites.List
	Cart          *cart.Cart
	Auth          *auth.Session
	Messages      *messages.Inbox
	Profile       *profile.Profile
}

// Manager opens device containers lazily. A container that failed to restore
// is never kept, so the next request retries. Idle containers are dropped by Evict.
type Manager struct {
	Persister snapshot.Persister

	now        func() time.Time
	mu         sync.Mutex
	containers map[string]*entry
}

type entry struct {
	mu       sync.Mutex
	c        *Container
	lastUsed time.Time
}

var _ savedsearches.Provider = (*Manager)(nil)

func NewManager(p snapshot.Persister) *Manager {
	return &Manager{Persister: p, now: time.Now, containers: make(map[string]*entry)}
}

// restoreTracker records the first error of the restores it forwards.
type restoreTracker struct {
	snapshot.Persister
	err error
}

func (r *restoreTracker) Restore(ctx context.Context, namespace, owner string, dst interface{}) (bool, error) {
	ok, err := r.Persister.Restore(ctx, namespace, owner, dst)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%s: %w", namespace, err)
	}
	return ok, err
}

// Container returns the owner's container, restoring it from persisted snapshots on first use.
func (m *Manager) Container(ctx context.Context, owner string) (*Container, error) {
	m.mu.Lock()
	e, ok := m.containers[owner]
	if !ok {
		e = &entry{}
		m.containers[owner] = e
	}
	e.lastUsed = m.now()
	m.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.c != nil {
		return e.c, nil
	}

	// Restores write through the tracker; submits go straight to the persister.
	tr := &restoreTracker{Persister: m.Persister}
	c := &Container{
		Owner:         owner,
		SavedSearches: savedsearches.Open(ctx, owner, tr),
		Favorites:     favorites.Open(ctx, owner, tr),
		Cart:          cart.Open(ctx, owner, tr),
		Auth:          auth.Open(ctx, owner, tr),
		Messages:      messages.Open(ctx, owner, tr),
		Profile:       profile.Open(ctx, owner, tr),
	}
	if tr.err != nil {
		m.mu.Lock()
		if m.containers[owner] == e {
			delete(m.containers, owner)
		}
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %v", ErrStateUnavailable, tr.err)
	}
	e.c = c
	log.Debug().Str("owner", owner).Msg("Device state opened")
	return c, nil
}

func (m *Manager) SavedSearches(ctx context.Context, owner string) (*savedsearches.Registry, error) {
	c, err := m.Container(ctx, owner)
	if err != nil {
		return nil, err
	}
	return c.SavedSearches, nil
}

func (m *Manager) Favorites(ctx context.Context, owner string) (*favorites.List, error) {
	c, err := m.Container(ctx, owner)
	if err != nil {
		return nil, err
	}
	return c.Favorites, nil
}

func (m *Manager) Cart(ctx context.Context, owner string) (*cart.Cart, error) {
	c, err := m.Container(ctx, owner)
	if err != nil {
		return nil, err
	}
	return c.Cart, nil
}

func (m *Manager) Auth(ctx context.Context, owner string) (*auth.Session, error) {
	c, err := m.Container(ctx, owner)
	if err != nil {
		return nil, err
	}
	return c.Auth, nil
}

func (m *Manager) Messages(ctx context.Context, owner string) (*messages.Inbox, error) {
	c, err := m.Container(ctx, owner)
	if err != nil {
		return nil, err
	}
	return c.Messages, nil
}

func (m *Manager) Profile(ctx context.Context, owner string) (*profile.Profile, error) {
	c, err := m.Container(ctx, owner)
	if err != nil {
		return nil, err
	}
	return c.Profile, nil
}

// Open reports how many device containers are live.
func (m *Manager) Open() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.containers)
}

type flusher interface {
	Flush(ctx context.Context) error
}

type forgetter interface {
	Forget(namespace, owner string)
}

// Evict drops containers unused for at least idle and returns how many were dropped.
// Pending writes are flushed first; a container used again meanwhile is kept.
func (m *Manager) Evict(ctx context.Context, idle time.Duration) (int, error) {
	if f, ok := m.Persister.(flusher); ok {
		if err := f.Flush(ctx); err != nil {
			return 0, err
		}
	}
	cutoff := m.now().Add(-idle)
	var dropped []string
	m.mu.Lock()
	for owner, e := range m.containers {
		if e.lastUsed.After(cutoff) {
			continue
		}
		delete(m.containers, owner)
		dropped = append(dropped, owner)
	}
	m.mu.Unlock()

	if f, ok := m.Persister.(forgetter); ok {
		for _, owner := range dropped {
			for _, ns := range Namespaces {
				f.Forget(ns, owner)
			}
		}
	}
	if len(dropped) > 0 {
		log.Debug().Int("count", len(dropped)).Int("open", m.Open()).Msg("Evicted idle device state")
	}
	return len(dropped), nil
}

// RunEviction calls Evict every interval until ctx is done.
func (m *Manager) RunEviction(ctx context.Context, every, idle time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := m.Evict(ctx, idle); err != nil && ctx.Err() == nil {
				log.Warn().Err(err).Msg("Device state eviction failed")
			}
		}
	}
}
