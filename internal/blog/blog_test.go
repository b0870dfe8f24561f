package blog

import "github.com/goliatone/go-errors"

var (
	errPostNotFound = errors.New("post not found", errors.CategoryNotFound).
			WithTextCode("not_found").
			WithCode(errors.CodeNotFound)
	errCommentNotFound = errors.New("comment not found", errors.CategoryNotFound).
				WithTextCode("not_found").
				WithCode(errors.CodeNotFound)
	errUserNotFound = errors.New("user not found", errors.CategoryNotFound).
			WithTextCode("not_found").
			WithCode(errors.CodeNotFound)
)
