package catalog

import (
	"context"
	"time"

	"carmarket-backend/internal/domain"
)

// Static serves a fixed external collection after a simulated network delay.
type Static struct {
	origin domain.Origin
	load   func() []domain.Listing
	Delay  time.Duration
}

func MobileDe(delay time.Duration) *Static {
	return &Static{origin: domain.OriginMobileDe, load: mobileDeListings, Delay: delay}
}

func Kleinanzeigen(delay time.Duration) *Static {
	return &Static{origin: domain.OriginKleinanzeigen, load: kleinanzeigenListings, Delay: delay}
}

func (s *Static) Origin() domain.Origin {
	return s.origin
}

// Fetch returns a fresh copy of the collection on every call.
func (s *Static) Fetch(ctx context.Context) ([]domain.Listing, error) {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.load(), nil
}
