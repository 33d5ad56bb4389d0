package favorites

import (
	"context"
	"testing"

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

func TestList_AddRemove(t *testing.T) {
	w := snapshot.NewWriter(setupStore(t), 2)
	l := Open(context.Background(), "dev-1", w)

	require.NoError(t, l.Add("car-1"))
	require.NoError(t, l.Add("car-2"))
	require.NoError(t, l.Add("car-1"))
	assert.Equal(t, []string{"car-1", "car-2"}, l.IDs())
	assert.True(t, l.IsFavorite("car-2"))

	l.Remove("car-1")
	l.Remove("car-1")
	assert.Equal(t, []string{"car-2"}, l.IDs())
	assert.False(t, l.IsFavorite("car-1"))

	assert.ErrorIs(t, l.Add(" "), ErrListingIDRequired)
}

func TestList_PersistsLatestState(t *testing.T) {
	ctx := context.Background()
	st := setupStore(t)
	w := snapshot.NewWriter(st, 4)
	l := Open(ctx, "dev-1", w)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, l.Add(id))
	}
	l.Remove("b")
	require.NoError(t, w.Flush(ctx))

	restored := Open(ctx, "dev-1", snapshot.NewWriter(st, 1))
	assert.Equal(t, []string{"a", "c", "d", "e"}, restored.IDs())
}

func TestList_IDsIsACopy(t *testing.T) {
	l := Open(context.Background(), "dev-1", snapshot.NewWriter(setupStore(t), 1))
	require.NoError(t, l.Add("a"))
	ids := l.IDs()
	ids[0] = "z"
	assert.Equal(t, []string{"a"}, l.IDs())
}
