package auth

import (
	"context"
	"testing"
	"time"

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

func TestSession_LoginAcceptsAnyCredentials(t *testing.T) {
	s := Open(context.Background(), "dev-1", snapshot.NewWriter(setupStore(t), 1))
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	st, err := s.Login("max@example.de", "x")
	require.NoError(t, err)
	assert.True(t, st.IsAuthenticated)
	require.NotNil(t, st.User)
	assert.Equal(t, "max@example.de", st.User.Email)
	assert.Equal(t, "Demo", st.User.FirstName)
	assert.True(t, st.User.Verified)
	assert.Equal(t, UserID("max@example.de"), st.User.ID)
	assert.Equal(t, "mock_token_"+st.User.ID, st.Token)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), st.User.CreatedAt)

	me, err := s.Me()
	require.NoError(t, err)
	assert.Equal(t, "max@example.de", me.Email)
}

func TestSession_UserIDIsStableAcrossLogins(t *testing.T) {
	ctx := context.Background()
	w := snapshot.NewWriter(setupStore(t), 1)
	s := Open(ctx, "dev-1", w)

	first, err := s.Login("Max@Example.de", "x")
	require.NoError(t, err)
	s.Logout()
	second, err := s.Login(" max@example.de ", "y")
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)

	other := Open(ctx, "dev-2", w)
	registered, err := other.Register(Registration{Email: "max@example.de", Password: "pw", FirstName: "Max", LastName: "M"})
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, registered.User.ID)

	anna, err := other.Login("anna@example.de", "pw")
	require.NoError(t, err)
	assert.NotEqual(t, first.User.ID, anna.User.ID)
}

func TestSession_LoginRequiresCredentials(t *testing.T) {
	s := Open(context.Background(), "dev-1", snapshot.NewWriter(setupStore(t), 1))
	_, err := s.Login("", "secret")
	assert.ErrorIs(t, err, ErrCredentialsRequired)
	_, err = s.Login("a@b.de", "")
	assert.ErrorIs(t, err, ErrCredentialsRequired)
	assert.False(t, s.Current().IsAuthenticated)
}

func TestSession_Register(t *testing.T) {
	s := Open(context.Background(), "dev-1", snapshot.NewWriter(setupStore(t), 1))
	_, err := s.Register(Registration{Email: "a@b.de", Password: "pw"})
	assert.ErrorIs(t, err, ErrNameRequired)
	_, err = s.Register(Registration{Email: "not-an-email", Password: "pw", FirstName: "A", LastName: "B"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	st, err := s.Register(Registration{Email: "a@b.de", Password: "pw", FirstName: "Anna", LastName: "Schmidt"})
	require.NoError(t, err)
	assert.False(t, st.User.Verified)
	assert.Equal(t, "Anna", st.User.FirstName)
}

func TestSession_LogoutAndRestore(t *testing.T) {
	ctx := context.Background()
	st := setupStore(t)
	w := snapshot.NewWriter(st, 1)
	s := Open(ctx, "dev-1", w)
	_, err := s.Login("a@b.de", "pw")
	require.NoError(t, err)
	require.NoError(t, w.Flush(ctx))

	restored := Open(ctx, "dev-1", snapshot.NewWriter(st, 1))
	assert.True(t, restored.Current().IsAuthenticated)

	restored.Logout()
	_, err = restored.Me()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
