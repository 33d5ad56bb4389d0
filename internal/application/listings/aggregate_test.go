package listings

import (
	"context"
	"errors"
	"testing"
	"time"

	"carmarket-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	origin   domain.Origin
	listings []domain.Listing
	err      error
	delay    time.Duration
	panics   bool
}

func (f *stubFetcher) Origin() domain.Origin { return f.origin }

func (f *stubFetcher) Fetch(ctx context.Context) ([]domain.Listing, error) {
	if f.panics {
		panic("boom")
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Listing, len(f.listings))
	copy(out, f.listings)
	return out, nil
}

func ok(origin domain.Origin, ids ...string) *stubFetcher {
	f := &stubFetcher{origin: origin}
	for _, id := range ids {
		f.listings = append(f.listings, domain.Listing{ID: id, Brand: "BMW"})
	}
	return f
}

func TestAggregate_KeepsFetcherOrderAndStampsOrigin(t *testing.T) {
	slow := ok(domain.OriginInternal, "i1", "i2")
	slow.delay = 30 * time.Millisecond
	results := Aggregate(context.Background(), time.Second,
		slow,
		ok(domain.OriginMobileDe, "m1"),
		ok(domain.OriginKleinanzeigen, "k1", "k2"),
	)
	require.Len(t, results, 3)
	assert.Equal(t, domain.OriginInternal, results[0].Origin)
	assert.Equal(t, domain.OriginMobileDe, results[1].Origin)

	all, err := Combine(results, PolicyAllOrNothing)
	require.NoError(t, err)
	var ids []string
	for _, l := range all {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"i1", "i2", "m1", "k1", "k2"}, ids)
	assert.Equal(t, domain.OriginInternal, all[0].Source)
	assert.Equal(t, domain.OriginKleinanzeigen, all[4].Source)
}

func TestCombine_OneFailureFailsWholeBatch(t *testing.T) {
	results := Aggregate(context.Background(), time.Second,
		ok(domain.OriginInternal, "i1"),
		&stubFetcher{origin: domain.OriginMobileDe, err: errors.New("503")},
		ok(domain.OriginKleinanzeigen, "k1"),
	)
	all, err := Combine(results, PolicyAllOrNothing)
	assert.ErrorIs(t, err, ErrAggregationFailed)
	assert.Contains(t, err.Error(), "mobile.de")
	require.NotNil(t, all)
	assert.Empty(t, all)
}

func TestCombine_PartialKeepsSuccessfulSources(t *testing.T) {
	results := Aggregate(context.Background(), time.Second,
		ok(domain.OriginInternal, "i1"),
		&stubFetcher{origin: domain.OriginMobileDe, err: errors.New("503")},
		ok(domain.OriginKleinanzeigen, "k1"),
	)
	all, err := Combine(results, PolicyPartial)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "i1", all[0].ID)
	assert.Equal(t, "k1", all[1].ID)
	assert.Error(t, results[1].Err)

	failed := []SourceResult{{Origin: domain.OriginMobileDe, Err: errors.New("x")}}
	_, err = Combine(failed, PolicyPartial)
	assert.ErrorIs(t, err, ErrAggregationFailed)
}

func TestAggregate_TimeoutAndPanicBecomeSourceErrors(t *testing.T) {
	hung := &stubFetcher{origin: domain.OriginMobileDe, delay: time.Hour}
	crash := &stubFetcher{origin: domain.OriginKleinanzeigen, panics: true}

	start := time.Now()
	results := Aggregate(context.Background(), 20*time.Millisecond, ok(domain.OriginInternal, "i1"), hung, crash)
	assert.Less(t, time.Since(start), 5*time.Second)

	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, context.DeadlineExceeded)
	assert.Error(t, results[2].Err)
	assert.Contains(t, results[2].Err.Error(), "panicked")
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyAllOrNothing, p)
	p, err = ParsePolicy("partial")
	require.NoError(t, err)
	assert.Equal(t, PolicyPartial, p)
	_, err = ParsePolicy("best-effort")
	assert.Error(t, err)
}
