package forum

import (
	"errors"
	"strings"

	"carmarket-backend/internal/application/forum"
	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/middleware"
	"carmarket-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Board *forum.Board
}

func forumError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, forum.ErrPostNotFound):
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	case errors.Is(err, forum.ErrTitleRequired), errors.Is(err, forum.ErrContentRequired), errors.Is(err, forum.ErrUserRequired):
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	default:
		return err
	}
}

func displayName(u *domain.AuthUser) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// GET /api/v1/forum/posts?category=
func (h *Handlers) List(c *fiber.Ctx) error {
	posts := h.Board.List(c.Query("category"))
	return response.Success(c, "Posts fetched successfully", posts, response.Count(len(posts)))
}

// GET /api/v1/forum/posts/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	post, err := h.Board.Get(c.Params("id"))
	if err != nil {
		return forumError(c, err)
	}
	return response.Success(c, "Post fetched successfully", post, nil)
}

// POST /api/v1/forum/posts: requires login; author comes from the session
func (h *Handlers) Create(c *fiber.Ctx) error {
	var in forum.NewPost
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	u := middleware.GetUser(c)
	in.Author, in.AuthorID = displayName(u), u.ID
	post, err := h.Board.AddPost(in)
	if err != nil {
		return forumError(c, err)
	}
	return response.SuccessCreated(c, "Post created successfully", post, nil)
}

// POST /api/v1/forum/posts/:id/comments
func (h *Handlers) Comment(c *fiber.Ctx) error {
	var in forum.NewComment
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	u := middleware.GetUser(c)
	in.Author, in.AuthorID = displayName(u), u.ID
	comment, err := h.Board.AddComment(c.Params("id"), in)
	if err != nil {
		return forumError(c, err)
	}
	return response.SuccessCreated(c, "Comment added successfully", comment, nil)
}

// POST /api/v1/forum/posts/:id/like
func (h *Handlers) Like(c *fiber.Ctx) error {
	post, err := h.Board.Like(c.Params("id"), middleware.GetUser(c).ID)
	if err != nil {
		return forumError(c, err)
	}
	return response.Success(c, "Post liked", post, fiber.Map{"likes": len(post.LikedBy)})
}

// DELETE /api/v1/forum/posts/:id/like
func (h *Handlers) Unlike(c *fiber.Ctx) error {
	post, err := h.Board.Unlike(c.Params("id"), middleware.GetUser(c).ID)
	if err != nil {
		return forumError(c, err)
	}
	return response.Success(c, "Like removed", post, fiber.Map{"likes": len(post.LikedBy)})
}
