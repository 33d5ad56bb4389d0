package forum

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

func openBoard(t *testing.T) *Board {
	return Open(context.Background(), snapshot.NewWriter(setupStore(t), 1), SeedPosts())
}

func TestBoard_SeededAndFilteredByCategory(t *testing.T) {
	b := openBoard(t)
	assert.Len(t, b.List(""), 5)

	tech := b.List("technik")
	require.Len(t, tech, 1)
	assert.Equal(t, "3", tech[0].ID)
	assert.Empty(t, b.List("Motorsport"))
}

func TestBoard_AddPostPrepends(t *testing.T) {
	b := openBoard(t)
	p, err := b.AddPost(NewPost{Title: " Winterreifen? ", Content: "Welche Marke?", Author: "Anna", AuthorID: "dev-1"})
	require.NoError(t, err)
	assert.Equal(t, "Winterreifen?", p.Title)
	assert.Equal(t, "Allgemein", p.Category)

	all := b.List("")
	require.Len(t, all, 6)
	assert.Equal(t, p.ID, all[0].ID)

	_, err = b.AddPost(NewPost{Title: "x"})
	assert.ErrorIs(t, err, ErrContentRequired)
	_, err = b.AddPost(NewPost{Content: "x"})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestBoard_AddCommentBumpsCount(t *testing.T) {
	b := openBoard(t)
	c, err := b.AddComment("3", NewComment{Content: "Nur Original-Öl verwenden.", Author: "Ben"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)

	p, err := b.Get("3")
	require.NoError(t, err)
	assert.Equal(t, 1, p.CommentCount)
	require.Len(t, p.Comments, 1)

	_, err = b.AddComment("missing", NewComment{Content: "x"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestBoard_LikeIsIdempotent(t *testing.T) {
	b := openBoard(t)
	p, err := b.Like("3", "dev-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user10", "dev-1"}, p.LikedBy)

	p, err = b.Like("3", "dev-1")
	require.NoError(t, err)
	assert.Len(t, p.LikedBy, 2)

	p, err = b.Unlike("3", "dev-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user10"}, p.LikedBy)

	_, err = b.Like("3", "")
	assert.ErrorIs(t, err, ErrUserRequired)
}

func TestBoard_ReturnedPostsAreCopies(t *testing.T) {
	b := openBoard(t)
	p, err := b.Get("1")
	require.NoError(t, err)
	p.LikedBy[0] = "mallory"
	p.Comments[0].Content = "changed"

	again, err := b.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "user2", again.LikedBy[0])
	assert.NotEqual(t, "changed", again.Comments[0].Content)
}

func TestBoard_RestoresPersistedState(t *testing.T) {
	ctx := context.Background()
	st := setupStore(t)
	w := snapshot.NewWriter(st, 2)
	b := Open(ctx, w, SeedPosts())
	_, err := b.AddPost(NewPost{Title: "Neu", Content: "Hallo"})
	require.NoError(t, err)
	require.NoError(t, w.Flush(ctx))

	restored := Open(ctx, snapshot.NewWriter(st, 1), SeedPosts())
	all := restored.List("")
	require.Len(t, all, 6)
	assert.Equal(t, "Neu", all[0].Title)
}
