package filters

import (
	"context"

	"carmarket-backend/internal/domain"
)

// Service owns the read/write contract for active criteria.
type Service struct {
	Store Store
}

// Active returns the owner's current criteria; an owner who never set one gets {}.
func (s *Service) Active(ctx context.Context, owner string) (domain.Criteria, error) {
	return s.Store.Get(ctx, owner)
}

// Patch sets the fields present in patch individually and keeps the others.
func (s *Service) Patch(ctx context.Context, owner string, patch domain.Criteria) (domain.Criteria, error) {
	current, err := s.Store.Get(ctx, owner)
	if err != nil {
		return domain.Criteria{}, err
	}
	next := current.Merge(patch)
	if err := s.Store.Set(ctx, owner, next); err != nil {
		return domain.Criteria{}, err
	}
	return next, nil
}

// Replace discards the current criteria and installs a copy of c.
func (s *Service) Replace(ctx context.Context, owner string, c domain.Criteria) (domain.Criteria, error) {
	next := c.Normalize()
	if err := s.Store.Set(ctx, owner, next); err != nil {
		return domain.Criteria{}, err
	}
	return next, nil
}

// Reset clears every constraint.
func (s *Service) Reset(ctx context.Context, owner string) error {
	return s.Store.Reset(ctx, owner)
}
