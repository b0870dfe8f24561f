package httpapi

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var usernameRe = regexp.MustCompile(`^[a-z0-9]+$`)

// SignUpRequest payload
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r SignUpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Username,
			validation.Required,
			validation.Length(6, 18),
			validation.Match(usernameRe).Error("must contain only lowercase letters and numbers"),
		),
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
			validation.Length(6, 100),
		),
	)
}

// SignInRequest payload
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r SignInRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// GoogleRequest carries the verified profile triple from the identity
// provider. Token verification happened upstream; the payload is trusted.
type GoogleRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"googlePhotoUrl"`
}

// Validate will run validation rules
func (r GoogleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.PhotoURL, is.URL),
	)
}

// UpdateUserRequest is a partial patch; absent fields stay unchanged.
type UpdateUserRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	ProfilePicture string `json:"profilePicture"`
}

// Validate will run validation rules
func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Username,
			validation.Length(6, 18),
			validation.Match(usernameRe).Error("must contain only lowercase letters and numbers"),
		),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Password, validation.Length(6, 100)),
		validation.Field(&r.ProfilePicture, is.URL),
	)
}

// CreatePostRequest payload
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// Validate will run validation rules
func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Image, is.URL),
	)
}

// UpdatePostRequest is a partial patch over the whitelisted fields.
type UpdatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// Validate will run validation rules
func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Image, is.URL),
	)
}

// CreateCommentRequest payload. UserID must match the authenticated caller.
type CreateCommentRequest struct {
	Content string `json:"content"`
	PostID  string `json:"postId"`
	UserID  string `json:"userId"`
}

// Validate will run validation rules
func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.PostID, validation.Required),
		validation.Field(&r.UserID, validation.Required),
	)
}

// EditCommentRequest payload
type EditCommentRequest struct {
	Content string `json:"content"`
}

// Validate will run validation rules
func (r EditCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required),
	)
}
