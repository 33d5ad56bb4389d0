package savedsearches

import (
	"context"

	"carmarket-backend/internal/application/filters"
	"carmarket-backend/internal/domain"
)

// Provider resolves the registry of an owner.
type Provider interface {
	SavedSearches(ctx context.Context, owner string) (*Registry, error)
}

type Service struct {
	Registries Provider
	Filters    *filters.Service
}

func (s *Service) List(ctx context.Context, owner string) ([]domain.SavedSearch, error) {
	r, err := s.Registries.SavedSearches(ctx, owner)
	if err != nil {
		return nil, err
	}
	return r.List(), nil
}

func (s *Service) Get(ctx context.Context, owner, id string) (domain.SavedSearch, error) {
	r, err := s.Registries.SavedSearches(ctx, owner)
	if err != nil {
		return domain.SavedSearch{}, err
	}
	found, ok := r.Get(id)
	if !ok {
		return domain.SavedSearch{}, ErrSearchNotFound
	}
	return found, nil
}

// Create saves c under name. A nil c saves the owner's active criteria.
func (s *Service) Create(ctx context.Context, owner, name string, c *domain.Criteria) (domain.SavedSearch, error) {
	r, err := s.Registries.SavedSearches(ctx, owner)
	if err != nil {
		return domain.SavedSearch{}, err
	}
	var crit domain.Criteria
	if c != nil {
		crit = *c
	} else {
		crit, err = s.Filters.Active(ctx, owner)
		if err != nil {
			return domain.SavedSearch{}, err
		}
	}
	return r.Create(name, crit.Normalize())
}

func (s *Service) Update(ctx context.Context, owner, id, name string, c domain.Criteria) (domain.SavedSearch, error) {
	r, err := s.Registries.SavedSearches(ctx, owner)
	if err != nil {
		return domain.SavedSearch{}, err
	}
	updated, ok, err := r.Update(id, name, c.Normalize())
	if err != nil {
		return domain.SavedSearch{}, err
	}
	if !ok {
		return domain.SavedSearch{}, ErrSearchNotFound
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, owner, id string) error {
	r, err := s.Registries.SavedSearches(ctx, owner)
	if err != nil {
		return err
	}
	r.Delete(id)
	return nil
}

// Reapply replaces the owner's active criteria with the saved snapshot. Nothing is merged.
func (s *Service) Reapply(ctx context.Context, owner, id string) (domain.Criteria, error) {
	saved, err := s.Get(ctx, owner, id)
	if err != nil {
		return domain.Criteria{}, err
	}
	return s.Filters.Replace(ctx, owner, saved.Filters)
}
