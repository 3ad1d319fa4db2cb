package data

import (
	"time"

	"github.com/okezie/pawhaven/internal/validator"
)

// Post defines a community forum post.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"username"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int32     `json:"-"`
}

func ValidatePost(v *validator.Validator, post *Post) {
	v.Check(post.Title != "", "title", "must be provided")
	v.Check(len(post.Title) <= 300, "title", "must not be more than 300 bytes long")
	v.Check(post.Content != "", "content", "must be provided")
	v.Check(len(post.Content) <= 20_000, "content", "must not be more than 20000 bytes long")
}
