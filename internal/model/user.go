package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// DefaultProfilePicture is the stub avatar assigned to accounts that never
// uploaded one.
const DefaultProfilePicture = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_960_720.png"

// User is the persisted account record. The password hash never leaves the
// process: every outward-facing path goes through Public().
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID             uuid.UUID `bun:"id,pk,type:uuid" json:"-"`
	Username       string    `bun:"username,notnull,unique" json:"-"`
	Email          string    `bun:"email,notnull,unique" json:"-"`
	PasswordHash   string    `bun:"password_hash,notnull" json:"-"`
	ProfilePicture string    `bun:"profile_picture,notnull" json:"-"`
	IsAdmin        bool      `bun:"is_admin,notnull,default:false" json:"-"`
	CreatedAt      time.Time `bun:"created_at,notnull" json:"-"`
	UpdatedAt      time.Time `bun:"updated_at,notnull" json:"-"`
}

// PublicUser is the outward representation of a User. It has no password
// field at all, so a marshaling bug can never leak the hash.
type PublicUser struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture"`
	IsAdmin        bool      `json:"isAdmin"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Public strips the credential material from the record.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID.String(),
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		IsAdmin:        u.IsAdmin,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// PublicUsers maps a result set to its outward representation.
func PublicUsers(users []*User) []PublicUser {
	out := make([]PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out
}
