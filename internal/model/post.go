package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// DefaultPostImage is used when a post is created without a cover image.
const DefaultPostImage = "https://www.salepepe.it/files/2017/06/scritta-di-sale-Too-much-salt.jpg"

// DefaultCategory is assigned when no category is supplied.
const DefaultCategory = "uncategorized"

// Post is an article. The slug is derived from the title at creation time
// and is unique across all posts.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:pst"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	UserID    string    `bun:"user_id,notnull" json:"userId"`
	Title     string    `bun:"title,notnull" json:"title"`
	Content   string    `bun:"content,notnull" json:"content"`
	Image     string    `bun:"image,notnull" json:"image"`
	Category  string    `bun:"category,notnull" json:"category"`
	Slug      string    `bun:"slug,notnull,unique" json:"slug"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}
