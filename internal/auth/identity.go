package auth

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/lucaflorio/go-blog-api/internal/model"
)

// UserStore is the slice of the persistence layer the resolver needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// Resolver turns a login attempt, local or federated, into a canonical user
// record plus a session token. Federated sign-in creates the record on first
// contact.
type Resolver struct {
	users  UserStore
	tokens *TokenService
	logger Logger
}

// NewResolver returns a new Resolver.
func NewResolver(users UserStore, tokens *TokenService) *Resolver {
	return &Resolver{
		users:  users,
		tokens: tokens,
		logger: defLogger{},
	}
}

func (r *Resolver) WithLogger(logger Logger) *Resolver {
	r.logger = logger
	return r
}

// SignIn verifies local credentials and issues a session token.
func (r *Resolver) SignIn(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrAllFieldsRequired
	}

	user, err := r.users.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		r.logger.Info("sign-in rejected", "email", email)
		return nil, "", ErrInvalidCredential
	}

	token, err := r.tokens.Issue(user.ID.String(), user.IsAdmin)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Google resolves a verified (name, email, photoURL) triple from the
// identity provider. An existing account is left untouched; an unknown email
// gets a synthesized account with a throwaway password.
func (r *Resolver) Google(ctx context.Context, name, email, photoURL string) (*model.User, string, error) {
	if name == "" || email == "" {
		return nil, "", ErrAllFieldsRequired
	}

	user, err := r.users.GetByEmail(ctx, email)
	if err != nil && !isNotFound(err) {
		return nil, "", err
	}

	if user == nil {
		hash, err := HashPassword(RandomPassword())
		if err != nil {
			return nil, "", err
		}

		now := time.Now()
		user = &model.User{
			ID:             uuid.New(),
			Username:       strings.ReplaceAll(strings.ToLower(name), " ", "") + usernameSuffix(),
			Email:          email,
			PasswordHash:   hash,
			ProfilePicture: photoURL,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if user.ProfilePicture == "" {
			user.ProfilePicture = model.DefaultProfilePicture
		}

		if err := r.users.Create(ctx, user); err != nil {
			return nil, "", err
		}
		r.logger.Info("federated sign-up", "username", user.Username)
	}

	token, err := r.tokens.Issue(user.ID.String(), user.IsAdmin)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// SignUp registers a local account. It does not issue a token; the caller
// has to sign in separately.
func (r *Resolver) SignUp(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return ErrAllFieldsRequired
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	user := &model.User{
		ID:             uuid.New(),
		Username:       username,
		Email:          email,
		PasswordHash:   hash,
		ProfilePicture: model.DefaultProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return r.users.Create(ctx, user)
}

func isNotFound(err error) bool {
	var rich *errors.Error
	return errors.As(err, &rich) && rich.Category == errors.CategoryNotFound
}
