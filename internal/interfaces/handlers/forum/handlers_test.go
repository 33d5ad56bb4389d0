package forum

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"carmarket-backend/internal/application/device"
	"carmarket-backend/internal/application/forum"
	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/infrastructure/snapshot"
	"carmarket-backend/internal/middleware"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const deviceA = "3f1c2a9e-7b4d-4e8a-9c21-5d6e7f809a1b"

func setupApp(t *testing.T) (*fiber.App, *device.Manager) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	store := &snapshot.GormStore{DB: db}
	require.NoError(t, store.AutoMigrate())
	w := snapshot.NewWriter(store, 1)

	devices := device.NewManager(w)
	h := &Handlers{Board: forum.Open(context.Background(), w, forum.SeedPosts())}
	app := fiber.New()
	app.Use(middleware.Device(middleware.DeviceConfig{}))
	auth := middleware.RequireAuth(devices)
	app.Get("/posts", h.List)
	app.Post("/posts", auth, h.Create)
	app.Get("/posts/:id", h.Get)
	app.Post("/posts/:id/comments", auth, h.Comment)
	app.Post("/posts/:id/like", auth, h.Like)
	app.Delete("/posts/:id/like", auth, h.Unlike)
	return app, devices
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, json.RawMessage) {
	var r io.Reader
	if body != "" {
		r = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.DeviceHeader, deviceA)
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out struct {
		Data json.RawMessage `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out.Data
}

func login(t *testing.T, devices *device.Manager) domain.AuthUser {
	s, err := devices.Auth(context.Background(), deviceA)
	require.NoError(t, err)
	st, err := s.Login("max@example.de", "pw")
	require.NoError(t, err)
	return *st.User
}

func TestForum_ListAndFilterByCategory(t *testing.T) {
	app, _ := setupApp(t)

	code, data := call(t, app, "GET", "/posts", "")
	require.Equal(t, fiber.StatusOK, code)
	var posts []domain.ForumPost
	require.NoError(t, json.Unmarshal(data, &posts))
	assert.Len(t, posts, len(forum.SeedPosts()))

	_, data = call(t, app, "GET", "/posts?category=technik", "")
	require.NoError(t, json.Unmarshal(data, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "3", posts[0].ID)

	code, _ = call(t, app, "GET", "/posts/nope", "")
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestForum_WritesRequireLogin(t *testing.T) {
	app, devices := setupApp(t)

	code, _ := call(t, app, "POST", "/posts", `{"title":"Frage","content":"Welches Öl?"}`)
	assert.Equal(t, fiber.StatusUnauthorized, code)
	code, _ = call(t, app, "POST", "/posts/1/like", "")
	assert.Equal(t, fiber.StatusUnauthorized, code)

	user := login(t, devices)
	code, data := call(t, app, "POST", "/posts", `{"title":"Frage","content":"Welches Öl?"}`)
	require.Equal(t, fiber.StatusCreated, code)
	var post domain.ForumPost
	require.NoError(t, json.Unmarshal(data, &post))
	assert.Equal(t, user.ID, post.AuthorID)
	assert.Equal(t, "Demo User", post.Author)
	assert.Equal(t, "Allgemein", post.Category)

	_, data = call(t, app, "GET", "/posts", "")
	var posts []domain.ForumPost
	require.NoError(t, json.Unmarshal(data, &posts))
	assert.Equal(t, post.ID, posts[0].ID)

	code, _ = call(t, app, "POST", "/posts", `{"title":" ","content":"x"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestForum_CommentAndLike(t *testing.T) {
	app, devices := setupApp(t)
	user := login(t, devices)

	code, _ := call(t, app, "POST", "/posts/3/comments", `{"content":"Zahnriemen prüfen!"}`)
	require.Equal(t, fiber.StatusCreated, code)
	_, data := call(t, app, "GET", "/posts/3", "")
	var post domain.ForumPost
	require.NoError(t, json.Unmarshal(data, &post))
	assert.Equal(t, len(post.Comments), post.CommentCount)

	call(t, app, "POST", "/posts/3/like", "")
	_, data = call(t, app, "POST", "/posts/3/like", "")
	require.NoError(t, json.Unmarshal(data, &post))
	assert.True(t, post.LikedByUser(user.ID))
	likes := len(post.LikedBy)

	_, data = call(t, app, "DELETE", "/posts/3/like", "")
	require.NoError(t, json.Unmarshal(data, &post))
	assert.False(t, post.LikedByUser(user.ID))
	assert.Len(t, post.LikedBy, likes-1)

	code, _ = call(t, app, "POST", "/posts/nope/comments", `{"content":"x"}`)
	assert.Equal(t, fiber.StatusNotFound, code)
}
