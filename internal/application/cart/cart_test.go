package cart

import (
	"context"
	"testing"

	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/infrastructure/snapshot"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *snapshot.GormStore {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	st := &snapshot.GormStore{DB: db}
	require.NoError(t, st.AutoMigrate())
	return st
}

func part(id, seller string, price, shipping float64) domain.CartItem {
	return domain.CartItem{
		ID:        id,
		Name:      "Bremsscheibe " + id,
		Price:     price,
		Brand:     "Brembo",
		Condition: domain.ConditionNew,
		Seller:    domain.PartSeller{Name: seller, Rating: 4.8, Location: "Berlin"},
		Shipping:  domain.Shipping{Cost: shipping, Time: "2-3 Tage"},
	}
}

func TestCart_AddIncrementsExisting(t *testing.T) {
	c := Open(context.Background(), "dev-1", snapshot.NewWriter(setupStore(t), 1))

	added, err := c.Add(part("p1", "AutoTeile24", 50, 4.99))
	require.NoError(t, err)
	assert.Equal(t, 1, added.Quantity)

	again := part("p1", "AutoTeile24", 50, 4.99)
	again.Quantity = 10
	added, err = c.Add(again)
	require.NoError(t, err)
	assert.Equal(t, 2, added.Quantity)
	assert.Len(t, c.Items(), 1)
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := Open(context.Background(), "dev-1", snapshot.NewWriter(setupStore(t), 1))
	_, _ = c.Add(part("p1", "A", 10, 0))
	_, _ = c.Add(part("p2", "A", 20, 0))

	require.NoError(t, c.UpdateQuantity("p1", 3))
	assert.Equal(t, 5, c.ItemCount())

	require.NoError(t, c.UpdateQuantity("p2", 0))
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "p1", c.Items()[0].ID)

	assert.ErrorIs(t, c.UpdateQuantity("missing", 2), ErrCartItemNotFound)
	assert.NoError(t, c.UpdateQuantity("missing", -1))
}

func TestCart_Totals(t *testing.T) {
	c := Open(context.Background(), "dev-1", snapshot.NewWriter(setupStore(t), 1))
	_, _ = c.Add(part("p1", "AutoTeile24", 50, 4.99))
	_, _ = c.Add(part("p2", "AutoTeile24", 30, 9.99))
	_, _ = c.Add(part("p3", "Schrott Müller", 100, 15))
	require.NoError(t, c.UpdateQuantity("p1", 2))

	assert.InDelta(t, 230.0, c.TotalPrice(), 1e-9)
	assert.InDelta(t, 19.99, c.TotalShipping(), 1e-9)
	assert.Equal(t, 4, c.ItemCount())

	sum := c.Summary()
	assert.InDelta(t, 230.0, sum.TotalPrice, 1e-9)
	assert.Len(t, sum.Items, 3)
}

func TestCart_RemoveAndClear(t *testing.T) {
	c := Open(context.Background(), "dev-1", snapshot.NewWriter(setupStore(t), 1))
	_, _ = c.Add(part("p1", "A", 10, 1))
	_, _ = c.Add(part("p2", "B", 10, 1))
	c.Remove("p1")
	c.Remove("p1")
	assert.Len(t, c.Items(), 1)
	c.Clear()
	assert.Empty(t, c.Items())
	assert.Zero(t, c.TotalShipping())
}

func TestCart_Validation(t *testing.T) {
	c := Open(context.Background(), "dev-1", snapshot.NewWriter(setupStore(t), 1))
	_, err := c.Add(domain.CartItem{})
	assert.ErrorIs(t, err, ErrItemIDRequired)
	_, err = c.Add(part("p1", "A", -1, 0))
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestCart_PersistsAsBareArray(t *testing.T) {
	ctx := context.Background()
	st := setupStore(t)
	w := snapshot.NewWriter(st, 2)
	c := Open(ctx, "dev-1", w)
	_, _ = c.Add(part("p1", "A", 10, 1))
	_, _ = c.Add(part("p1", "A", 10, 1))
	require.NoError(t, w.Flush(ctx))

	payload, _, err := st.Load(ctx, snapshot.NamespaceCart, "dev-1")
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	assert.Equal(t, byte('['), payload[0])

	restored := Open(ctx, "dev-1", snapshot.NewWriter(st, 1))
	require.Len(t, restored.Items(), 1)
	assert.Equal(t, 2, restored.Items()[0].Quantity)
}
