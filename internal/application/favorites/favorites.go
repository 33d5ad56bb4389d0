package favorites

import (
	"context"
	"errors"
	"strings"
	"sync"

	"carmarket-backend/internal/infrastructure/snapshot"

	"github.com/rs/zerolog/log"
)

var ErrListingIDRequired = errors.New("listing id is required")

// State is the persisted shape under favorites-storage.
type State struct {
	Favorites []string `json:"favorites"`
}

// List is one owner's favorite listing ids in the order they were added.
type List struct {
	owner   string
	persist snapshot.Persister

	mu  sync.Mutex
	ids []string
}

// Open restores the owner's favorites. A failed restore is logged and yields an empty list.
func Open(ctx context.Context, owner string, p snapshot.Persister) *List {
	l := &List{owner: owner, persist: p}
	var st State
	if _, err := p.Restore(ctx, snapshot.NamespaceFavorites, owner, &st); err != nil {
		log.Error().Err(err).Str("owner", owner).Msg("Failed to restore favorites")
		return l
	}
	l.ids = st.Favorites
	return l
}

func (l *List) save() {
	l.persist.Submit(snapshot.NamespaceFavorites, l.owner, State{Favorites: l.snapshot()})
}

func (l *List) snapshot() []string {
	out := make([]string, len(l.ids))
	copy(out, l.ids)
	return out
}

func (l *List) indexOf(id string) int {
	for i, v := range l.ids {
		if v == id {
			return i
		}
	}
	return -1
}

// Add marks id as favorite. Adding an id that is already present changes nothing.
func (l *List) Add(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrListingIDRequired
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.indexOf(id) >= 0 {
		return nil
	}
	l.ids = append(l.ids, id)
	l.save()
	return nil
}

func (l *List) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.indexOf(id)
	if i < 0 {
		return
	}
	l.ids = append(l.ids[:i], l.ids[i+1:]...)
	l.save()
}

func (l *List) IsFavorite(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.indexOf(id) >= 0
}

func (l *List) IDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}
