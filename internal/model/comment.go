package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Comment belongs to a post. Likes holds the ids of the users that liked
// the comment, without duplicates; NumberOfLikes mirrors len(Likes) and the
// two are only ever written together.
type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:cmt"`

	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	PostID        string    `bun:"post_id,notnull" json:"postId"`
	UserID        string    `bun:"user_id,notnull" json:"userId"`
	Content       string    `bun:"content,notnull" json:"content"`
	Likes         []string  `bun:"likes" json:"likes"`
	NumberOfLikes int       `bun:"number_of_likes,notnull,default:0" json:"numberOfLikes"`
	CreatedAt     time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt     time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

// LikedBy reports whether the given user already liked the comment.
func (c *Comment) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
