package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteFallback(t *testing.T) {
	db, err := Open("", ":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	assert.True(t, db.Migrator().HasTable("listings"))
	assert.True(t, db.Migrator().HasTable("snapshots"))
}
