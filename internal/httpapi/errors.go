package httpapi

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// ErrMissingSession is returned when no token cookie accompanies a
// protected request.
var ErrMissingSession = errors.New("unauthorized", errors.CategoryAuth).
	WithTextCode("session_missing").
	WithCode(errors.CodeUnauthorized)

// ErrInvalidBody is returned when the request body cannot be decoded.
var ErrInvalidBody = errors.New("invalid request body", errors.CategoryBadInput).
	WithTextCode("invalid_body").
	WithCode(errors.CodeBadRequest)

// badRequest wraps a payload validation failure, keeping the per-field
// messages in the response body.
func badRequest(err error) error {
	return errors.Wrap(err, errors.CategoryValidation, err.Error()).
		WithTextCode("validation_failed").
		WithCode(errors.CodeBadRequest)
}

// NewErrorHandler maps every failure to the structured envelope
// {success:false, statusCode, message}. Internal failures leak no detail
// unless debug mode is on.
func NewErrorHandler(debug bool, logger Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var rich *errors.Error
		if !errors.As(err, &rich) {
			var fe *fiber.Error
			if stderrors.As(err, &fe) {
				rich = errors.New(fe.Message, errors.CategoryBadInput).WithCode(fe.Code)
			} else {
				rich = errors.Wrap(err, errors.CategoryInternal, "internal server error").
					WithCode(errors.CodeInternal)
			}
		}

		status := rich.Code
		if status == 0 {
			status = fiber.StatusInternalServerError
		}

		message := rich.Message
		if status >= fiber.StatusInternalServerError {
			logger.Error("request failed", "path", c.Path(), "error", err)
			if !debug {
				message = "internal server error"
			}
		}

		body := fiber.Map{
			"success":    false,
			"statusCode": status,
			"message":    message,
		}
		if debug {
			body["details"] = err.Error()
			if len(rich.Metadata) > 0 {
				body["metadata"] = rich.Metadata
			}
		}

		return c.Status(status).JSON(body)
	}
}
