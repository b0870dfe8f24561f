package auth

import "github.com/goliatone/go-errors"

// ErrAllFieldsRequired is returned when a login or registration payload is
// missing required fields.
var ErrAllFieldsRequired = errors.New("all fields are required", errors.CategoryBadInput).
	WithTextCode("auth_missing_fields").
	WithCode(errors.CodeBadRequest)

// ErrUserNotFound is returned when no account matches the given email.
var ErrUserNotFound = errors.New("user not found", errors.CategoryNotFound).
	WithTextCode("auth_user_not_found").
	WithCode(errors.CodeNotFound)

// ErrInvalidCredential is returned on a password mismatch.
var ErrInvalidCredential = errors.New("invalid password", errors.CategoryBadInput).
	WithTextCode("auth_invalid_credential").
	WithCode(errors.CodeBadRequest)

// ErrNoEmptyString is returned when an empty password reaches the hasher.
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryValidation).
	WithTextCode("auth_empty_password").
	WithCode(errors.CodeBadRequest)

// ErrMismatchedHashAndPassword is the normalized bcrypt failure. Malformed
// digests map here too so verification never distinguishes them.
var ErrMismatchedHashAndPassword = errors.New("hash and password mismatch", errors.CategoryAuth).
	WithTextCode("auth_hash_mismatch").
	WithCode(errors.CodeUnauthorized)

// ErrTokenInvalid covers every token verification failure: bad signature,
// malformed payload, unexpected signing method, or expiry.
var ErrTokenInvalid = errors.New("invalid session token", errors.CategoryAuth).
	WithTextCode("auth_token_invalid").
	WithCode(errors.CodeUnauthorized)
