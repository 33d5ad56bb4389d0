package domain

import "time"

// ForumComment is a reply on a forum post.
type ForumComment struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	LikedBy   []string  `json:"likedBy"`
}

// ForumPost is a discussion thread.
type ForumPost struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	Category     string         `json:"category"`
	Author       string         `json:"author"`
	AuthorID     string         `json:"authorId"`
	CreatedAt    time.Time      `json:"createdAt"`
	Comments     []ForumComment `json:"comments"`
	LikedBy      []string       `json:"likedBy"`
	CommentCount int            `json:"commentCount"`
}

// LikedByUser reports whether userID has liked the post.
func (p ForumPost) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
