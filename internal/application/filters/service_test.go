package filters

import (
	"context"
	"testing"

	"carmarket-backend/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisStore(t *testing.T) *RedisStore {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return &RedisStore{Rdb: rdb}
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  redisStore(t),
	}
}

func TestService_ActiveStartsEmpty(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			svc := &Service{Store: st}
			c, err := svc.Active(context.Background(), "dev-1")
			require.NoError(t, err)
			assert.True(t, c.IsEmpty())
		})
	}
}

func TestService_PatchSetsFieldsIndividually(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			svc := &Service{Store: st}

			_, err := svc.Patch(ctx, "dev-1", domain.Criteria{Brand: "BMW"})
			require.NoError(t, err)
			_, err = svc.Patch(ctx, "dev-1", domain.Criteria{MaxPrice: domain.FloatPtr(50000)})
			require.NoError(t, err)
			c, err := svc.Patch(ctx, "dev-1", domain.Criteria{Brand: "Audi"})
			require.NoError(t, err)

			assert.Equal(t, domain.Criteria{Brand: "Audi", MaxPrice: domain.FloatPtr(50000)}, c)

			stored, err := svc.Active(ctx, "dev-1")
			require.NoError(t, err)
			assert.Equal(t, c, stored)
		})
	}
}

func TestService_ReplaceIsWholesale(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			svc := &Service{Store: st}
			_, err := svc.Patch(ctx, "dev-1", domain.Criteria{Brand: "BMW", MaxPrice: domain.FloatPtr(50000)})
			require.NoError(t, err)

			_, err = svc.Replace(ctx, "dev-1", domain.Criteria{MinYear: domain.IntPtr(2020)})
			require.NoError(t, err)

			c, err := svc.Active(ctx, "dev-1")
			require.NoError(t, err)
			assert.Equal(t, domain.Criteria{MinYear: domain.IntPtr(2020)}, c)
		})
	}
}

func TestService_ResetAndOwnerIsolation(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			svc := &Service{Store: st}
			_, err := svc.Patch(ctx, "dev-1", domain.Criteria{Keyword: "golf"})
			require.NoError(t, err)
			_, err = svc.Patch(ctx, "dev-2", domain.Criteria{Brand: "BMW"})
			require.NoError(t, err)

			require.NoError(t, svc.Reset(ctx, "dev-1"))

			c1, err := svc.Active(ctx, "dev-1")
			require.NoError(t, err)
			assert.True(t, c1.IsEmpty())
			c2, err := svc.Active(ctx, "dev-2")
			require.NoError(t, err)
			assert.Equal(t, "BMW", c2.Brand)
		})
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	live := domain.Criteria{FuelType: []string{domain.FuelDiesel}}
	require.NoError(t, st.Set(ctx, "dev-1", live))
	live.FuelType[0] = domain.FuelBenzin

	got, err := st.Get(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, []string{domain.FuelDiesel}, got.FuelType)
}
