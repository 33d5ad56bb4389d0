package savedsearches

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/infrastructure/snapshot"

	"github.com/rs/zerolog/log"
)

var (
	ErrNameRequired   = errors.New("saved search name is required")
	ErrSearchNotFound = errors.New("saved search not found")
)

// State is the persisted shape under saved-searches-storage.
type State struct {
	SavedSearches []domain.SavedSearch `json:"savedSearches"`
}

// Registry holds one owner's saved searches. Memory is the source of truth;
// every mutation submits a full snapshot to the persister and returns without waiting.
type Registry struct {
	owner   string
	persist snapshot.Persister
	now     func() time.Time

	mu       sync.Mutex
	searches []domain.SavedSearch
	lastID   int64
}

// Open restores the owner's registry. A failed restore is logged and yields an empty registry.
func Open(ctx context.Context, owner string, p snapshot.Persister) *Registry {
	r := &Registry{owner: owner, persist: p, now: time.Now}
	var st State
	if _, err := p.Restore(ctx, snapshot.NamespaceSavedSearches, owner, &st); err != nil {
		log.Error().Err(err).Str("owner", owner).Msg("Failed to restore saved searches")
		return r
	}
	for _, s := range st.SavedSearches {
		if n, err := strconv.ParseInt(s.ID, 10, 64); err == nil && n > r.lastID {
			r.lastID = n
		}
	}
	r.searches = st.SavedSearches
	return r
}

func (r *Registry) nextID(at time.Time) string {
	id := at.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return strconv.FormatInt(id, 10)
}

func (r *Registry) save() {
	out := make([]domain.SavedSearch, len(r.searches))
	for i, s := range r.searches {
		out[i] = s.Clone()
	}
	r.persist.Submit(snapshot.NamespaceSavedSearches, r.owner, State{SavedSearches: out})
}

// Create appends a snapshot of c under name. Names are trimmed and must not be empty; duplicates are allowed.
func (r *Registry) Create(name string, c domain.Criteria) (domain.SavedSearch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.SavedSearch{}, ErrNameRequired
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	at := r.now().UTC()
	s := domain.SavedSearch{
		ID:        r.nextID(at),
		Name:      name,
		Filters:   c.Clone(),
		CreatedAt: at,
	}
	r.searches = append(r.searches, s)
	r.save()
	return s.Clone(), nil
}

func (r *Registry) Get(id string) (domain.SavedSearch, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.searches {
		if s.ID == id {
			return s.Clone(), true
		}
	}
	return domain.SavedSearch{}, false
}

// List returns the searches in creation order.
func (r *Registry) List() []domain.SavedSearch {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.SavedSearch, len(r.searches))
	for i, s := range r.searches {
		out[i] = s.Clone()
	}
	return out
}

// Update replaces name, filters and timestamp of an existing search.
// A missing id leaves the registry untouched and reports false.
func (r *Registry) Update(id, name string, c domain.Criteria) (domain.SavedSearch, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.SavedSearch{}, false, ErrNameRequired
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.searches {
		if r.searches[i].ID != id {
			continue
		}
		r.searches[i].Name = name
		r.searches[i].Filters = c.Clone()
		r.searches[i].CreatedAt = r.now().UTC()
		r.save()
		return r.searches[i].Clone(), true, nil
	}
	return domain.SavedSearch{}, false, nil
}

// Delete removes the search with id. Deleting an absent id is a no-op.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.searches {
		if r.searches[i].ID == id {
			r.searches = append(r.searches[:i], r.searches[i+1:]...)
			r.save()
			return true
		}
	}
	return false
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.searches)
}
