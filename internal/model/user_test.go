package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserNeverMarshalsCredentials(t *testing.T) {
	user := &User{
		ID:           uuid.New(),
		Username:     "alice01",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), user.PasswordHash)
}

func TestPublicUserShape(t *testing.T) {
	user := &User{
		ID:             uuid.New(),
		Username:       "alice01",
		Email:          "a@x.com",
		PasswordHash:   "$2a$10$abcdefghijklmnopqrstuv",
		ProfilePicture: DefaultProfilePicture,
		IsAdmin:        true,
	}

	raw, err := json.Marshal(user.Public())
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, "alice01", out["username"])
	assert.Equal(t, "a@x.com", out["email"])
	assert.Equal(t, true, out["isAdmin"])
	assert.NotContains(t, out, "password")
	assert.NotContains(t, out, "passwordHash")
}

func TestCommentLikedBy(t *testing.T) {
	c := &Comment{Likes: []string{"u1", "u2"}}

	assert.True(t, c.LikedBy("u1"))
	assert.False(t, c.LikedBy("u3"))
	assert.False(t, (&Comment{}).LikedBy("u1"))
}
