package listings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carmarket-backend/internal/domain"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ErrAggregationFailed is returned by Combine when the policy rejects the batch.
var ErrAggregationFailed = errors.New("listing aggregation failed")

// Fetcher produces the listings of one origin.
type Fetcher interface {
	Origin() domain.Origin
	Fetch(ctx context.Context) ([]domain.Listing, error)
}

// SourceResult is the outcome of one fetcher. Exactly one of Listings or Err is meaningful.
type SourceResult struct {
	Origin   domain.Origin
	Listings []domain.Listing
	Err      error
}

// Policy decides what a batch with failed sources yields.
type Policy string

const (
	// PolicyAllOrNothing fails the whole batch when any source fails.
	PolicyAllOrNothing Policy = "all-or-nothing"
	// PolicyPartial keeps the listings of the sources that succeeded.
	PolicyPartial Policy = "partial"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyAllOrNothing, PolicyPartial:
		return Policy(s), nil
	case "":
		return PolicyAllOrNothing, nil
	}
	return "", fmt.Errorf("unknown aggregation policy %q", s)
}

type fetchOutcome struct {
	listings []domain.Listing
	err      error
}

// Aggregate runs every fetcher concurrently, each bounded by timeout when it is positive.
// Results come back in fetcher order, with every listing stamped with its source's origin.
func Aggregate(ctx context.Context, timeout time.Duration, fetchers ...Fetcher) []SourceResult {
	results := make([]SourceResult, len(fetchers))
	var g errgroup.Group
	for i, f := range fetchers {
		i, f := i, f
		g.Go(func() error {
			results[i] = fetchOne(ctx, timeout, f)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func fetchOne(ctx context.Context, timeout time.Duration, f Fetcher) SourceResult {
	origin := f.Origin()
	fctx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		fctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	done := make(chan fetchOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fetchOutcome{err: fmt.Errorf("fetcher panicked: %v", r)}
			}
		}()
		l, err := f.Fetch(fctx)
		done <- fetchOutcome{listings: l, err: err}
	}()

	var out fetchOutcome
	select {
	case out = <-done:
	case <-fctx.Done():
		out.err = fctx.Err()
	}
	if out.err != nil {
		log.Error().Err(out.err).Str("origin", string(origin)).Msg("Listing fetch failed")
		return SourceResult{Origin: origin, Err: fmt.Errorf("%s: %w", origin, out.err)}
	}

	for i := range out.listings {
		out.listings[i].Source = origin
	}
	log.Debug().Str("origin", string(origin)).Int("count", len(out.listings)).Int64("ms", time.Since(start).Milliseconds()).Msg("Listing fetch done")
	return SourceResult{Origin: origin, Listings: out.listings}
}

// Combine concatenates results in order according to policy. A rejected batch
// yields an empty, non-nil slice and an error wrapping ErrAggregationFailed.
// Under PolicyPartial the batch is only rejected when every source failed.
func Combine(results []SourceResult, policy Policy) ([]domain.Listing, error) {
	var errs []error
	n := 0
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		n += len(r.Listings)
	}
	failed := len(errs) > 0 && (policy != PolicyPartial || len(errs) == len(results))
	if failed {
		return []domain.Listing{}, fmt.Errorf("%w: %w", ErrAggregationFailed, errors.Join(errs...))
	}

	out := make([]domain.Listing, 0, n)
	for _, r := range results {
		if r.Err == nil {
			out = append(out, r.Listings...)
		}
	}
	return out, nil
}
