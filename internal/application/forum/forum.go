package forum

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/infrastructure/snapshot"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrPostNotFound    = errors.New("forum post not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
	ErrUserRequired    = errors.New("user id is required")
)

// Owner is the snapshot owner of the board, which every device shares.
const Owner = "shared"

// State is the persisted shape under forum-storage.
type State struct {
	Posts []domain.ForumPost `json:"posts"`
}

// NewPost is the input of AddPost.
type NewPost struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Author   string `json:"author"`
	AuthorID string `json:"authorId"`
}

// NewComment is the input of AddComment.
type NewComment struct {
	Content  string `json:"content"`
	Author   string `json:"author"`
	AuthorID string `json:"authorId"`
}

type Board struct {
	persist snapshot.Persister
	now     func() time.Time

	mu    sync.Mutex
	posts []domain.ForumPost
}

// Open restores the board, falling back to seed when nothing was persisted or the restore failed.
func Open(ctx context.Context, p snapshot.Persister, seed []domain.ForumPost) *Board {
	b := &Board{persist: p, now: time.Now}
	var st State
	ok, err := p.Restore(ctx, snapshot.NamespaceForum, Owner, &st)
	if err != nil {
		log.Error().Err(err).Msg("Failed to restore forum")
	}
	if ok && err == nil {
		b.posts = st.Posts
	} else {
		b.posts = clonePosts(seed)
	}
	return b
}

func clonePost(p domain.ForumPost) domain.ForumPost {
	out := p
	out.LikedBy = append([]string{}, p.LikedBy...)
	out.Comments = make([]domain.ForumComment, len(p.Comments))
	for i, c := range p.Comments {
		c.LikedBy = append([]string{}, c.LikedBy...)
		out.Comments[i] = c
	}
	return out
}

func clonePosts(posts []domain.ForumPost) []domain.ForumPost {
	out := make([]domain.ForumPost, len(posts))
	for i, p := range posts {
		out[i] = clonePost(p)
	}
	return out
}

func (b *Board) save() {
	b.persist.Submit(snapshot.NamespaceForum, Owner, State{Posts: clonePosts(b.posts)})
}

func (b *Board) find(id string) int {
	for i := range b.posts {
		if b.posts[i].ID == id {
			return i
		}
	}
	return -1
}

// List returns posts newest first. An empty category returns every post.
func (b *Board) List(category string) []domain.ForumPost {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.ForumPost, 0, len(b.posts))
	for _, p := range b.posts {
		if category == "" || strings.EqualFold(p.Category, category) {
			out = append(out, clonePost(p))
		}
	}
	return out
}

func (b *Board) Get(id string) (domain.ForumPost, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.find(id)
	if i < 0 {
		return domain.ForumPost{}, ErrPostNotFound
	}
	return clonePost(b.posts[i]), nil
}

// AddPost prepends a new post.
func (b *Board) AddPost(in NewPost) (domain.ForumPost, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Title == "" {
		return domain.ForumPost{}, ErrTitleRequired
	}
	if in.Content == "" {
		return domain.ForumPost{}, ErrContentRequired
	}
	if in.Category == "" {
		in.Category = "Allgemein"
	}
	p := domain.ForumPost{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		Author:    in.Author,
		AuthorID:  in.AuthorID,
		CreatedAt: b.now().UTC(),
		Comments:  []domain.ForumComment{},
		LikedBy:   []string{},
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.posts = append([]domain.ForumPost{p}, b.posts...)
	b.save()
	return clonePost(p), nil
}

// AddComment appends a comment and bumps the post's comment count.
func (b *Board) AddComment(postID string, in NewComment) (domain.ForumComment, error) {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return domain.ForumComment{}, ErrContentRequired
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.find(postID)
	if i < 0 {
		return domain.ForumComment{}, ErrPostNotFound
	}
	c := domain.ForumComment{
		ID:        uuid.NewString(),
		AuthorID:  in.AuthorID,
		Author:    in.Author,
		Content:   in.Content,
		CreatedAt: b.now().UTC(),
		LikedBy:   []string{},
	}
	b.posts[i].Comments = append(b.posts[i].Comments, c)
	b.posts[i].CommentCount++
	b.save()
	return c, nil
}

// Like records userID's like once.
func (b *Board) Like(postID, userID string) (domain.ForumPost, error) {
	if userID == "" {
		return domain.ForumPost{}, ErrUserRequired
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.find(postID)
	if i < 0 {
		return domain.ForumPost{}, ErrPostNotFound
	}
	if !b.posts[i].LikedByUser(userID) {
		b.posts[i].LikedBy = append(b.posts[i].LikedBy, userID)
		b.save()
	}
	return clonePost(b.posts[i]), nil
}

func (b *Board) Unlike(postID, userID string) (domain.ForumPost, error) {
	if userID == "" {
		return domain.ForumPost{}, ErrUserRequired
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.find(postID)
	if i < 0 {
		return domain.ForumPost{}, ErrPostNotFound
	}
	if b.posts[i].LikedByUser(userID) {
		kept := b.posts[i].LikedBy[:0]
		for _, id := range b.posts[i].LikedBy {
			if id != userID {
				kept = append(kept, id)
			}
		}
		b.posts[i].LikedBy = kept
		b.save()
	}
	return clonePost(b.posts[i]), nil
}
