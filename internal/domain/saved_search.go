package domain

import "time"

// SavedSearch is a named, immutable snapshot of Criteria.
type SavedSearch struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Filters   Criteria  `json:"filters"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a copy whose filters share nothing with s.
func (s SavedSearch) Clone() SavedSearch {
	out := s
	out.Filters = s.Filters.Clone()
	return out
}
