package lib

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Domain errors shared across controllers and the relay. Handlers translate
// them to HTTP statuses with ErrorStatus; anything unrecognized is a 500.
var (
	ErrMissingField        = errors.New("missing required field")
	ErrInvalidUpload       = errors.New("file too large or unsupported file type")
	ErrInvalidRole         = errors.New("invalid user role")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("no active connection found")
	ErrNotFound            = errors.New("not found")
	ErrDuplicateConnection = errors.New("connection request already exists")
	ErrAlreadyProcessed    = errors.New("request already processed")
)

// ErrorStatus maps a domain error to the HTTP status it is reported with.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingField),
		errors.Is(err, ErrInvalidUpload),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrDuplicateConnection),
		errors.Is(err, ErrAlreadyProcessed):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// FailWith writes the standard error response for a domain error. Unexpected
// errors are masked as a generic server error so internals never leak.
func FailWith(c *fiber.Ctx, err error) error {
	status := ErrorStatus(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "Server error"
	}
	return c.Status(status).JSON(MessageResponse(msg))
}
