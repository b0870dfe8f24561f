package blog

import (
	"context"
	"time"

	"github.com/goliatone/go-errors"

	"github.com/lucaflorio/go-blog-api/internal/auth"
	"github.com/lucaflorio/go-blog-api/internal/model"
)

// ErrUserUpdateNotSelf is returned when a user tries to update an account
// other than their own. Admins get no exemption here.
var ErrUserUpdateNotSelf = errors.New("you are not allowed to update this user", errors.CategoryAuth).
	WithTextCode("user_update_not_self").
	WithCode(errors.CodeUnauthorized)

// ErrUserDeleteForbidden is returned when the caller is neither the account
// owner nor an admin.
var ErrUserDeleteForbidden = errors.New("you are not allowed to delete this user", errors.CategoryAuthz).
	WithTextCode("user_delete_forbidden").
	WithCode(errors.CodeForbidden)

// UserStore is the slice of the persistence layer the profile service
// needs.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int, ascending bool) ([]*model.User, error)
	Count(ctx context.Context) (int, error)
	CountCreatedSince(ctx context.Context, t time.Time) (int, error)
}

// UserPatch carries the mutable profile fields; empty values are left
// unchanged. Password arrives as plaintext and is re-hashed before storage.
type UserPatch struct {
	Username       string
	Email          string
	Password       string
	ProfilePicture string
}

// UserListing is the admin listing envelope.
type UserListing struct {
	Users          []model.PublicUser `json:"users"`
	TotalUsers     int                `json:"totalUsers"`
	LastMonthUsers int                `json:"lastMonthUsers"`
}

// Users is the profile service.
type Users struct {
	store  UserStore
	logger Logger
}

// NewUsers returns a new profile service.
func NewUsers(store UserStore) *Users {
	return &Users{store: store, logger: defLogger{}}
}

func (s *Users) WithLogger(logger Logger) *Users {
	s.logger = logger
	return s
}

// Get returns the account record; callers expose it through Public().
func (s *Users) Get(ctx context.Context, userID string) (*model.User, error) {
	return s.store.GetByID(ctx, userID)
}

// Update applies a partial patch to the caller's own account. Field rules
// are validated at the transport boundary before this runs.
func (s *Users) Update(ctx context.Context, userID string, patch UserPatch, callerID string) (*model.User, error) {
	if callerID != userID {
		return nil, ErrUserUpdateNotSelf
	}

	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Username != "" {
		user.Username = patch.Username
	}
	if patch.Email != "" {
		user.Email = patch.Email
	}
	if patch.ProfilePicture != "" {
		user.ProfilePicture = patch.ProfilePicture
	}
	if patch.Password != "" {
		hash, err := auth.HashPassword(patch.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.store.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account. Permitted for the owner or an admin. Comments
// and posts keep their dangling author id; there is no referential cleanup.
func (s *Users) Delete(ctx context.Context, userID, callerID string, callerIsAdmin bool) error {
	if !callerIsAdmin && callerID != userID {
		return ErrUserDeleteForbidden
	}
	return s.store.Delete(ctx, userID)
}

// List is admin-only. Sort "asc" returns oldest first; the default is
// newest first.
func (s *Users) List(ctx context.Context, q ListQuery, callerIsAdmin bool) (*UserListing, error) {
	if !callerIsAdmin {
		return nil, ErrAdminOnly
	}

	users, err := s.store.List(ctx, q.start(), q.limit(), q.Sort == "asc")
	if err != nil {
		return nil, err
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	lastMonth, err := s.store.CountCreatedSince(ctx, oneMonthAgo())
	if err != nil {
		return nil, err
	}

	return &UserListing{
		Users:          model.PublicUsers(users),
		TotalUsers:     total,
		LastMonthUsers: lastMonth,
	}, nil
}
