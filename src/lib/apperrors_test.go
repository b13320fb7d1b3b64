package lib

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrMissingField, fiber.StatusBadRequest},
		{ErrInvalidUpload, fiber.StatusBadRequest},
		{ErrInvalidRole, fiber.StatusBadRequest},
		{ErrInvalidStatus, fiber.StatusBadRequest},
		{ErrDuplicateConnection, fiber.StatusBadRequest},
		{ErrAlreadyProcessed, fiber.StatusBadRequest},
		{ErrInvalidCredentials, fiber.StatusUnauthorized},
		{ErrInvalidToken, fiber.StatusUnauthorized},
		{ErrUnauthorized, fiber.StatusForbidden},
		{ErrForbidden, fiber.StatusForbidden},
		{ErrNotFound, fiber.StatusNotFound},
		{errors.New("disk on fire"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := ErrorStatus(tc.err); got != tc.want {
			t.Errorf("ErrorStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
