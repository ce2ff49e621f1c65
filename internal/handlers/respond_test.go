package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/workbridge/jobboard-backend/internal/services"
	"github.com/workbridge/jobboard-backend/internal/storage"
)

func TestFailStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", storage.ErrNotFound, http.StatusNotFound},
		{"missing job", services.ErrJobMissing, http.StatusNotFound},
		{"bad credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not owner", services.ErrNotOwner, http.StatusForbidden},
		{"email taken", services.ErrEmailTaken, http.StatusConflict},
		{"wrapped validation", fmt.Errorf("%w: title is required", services.ErrValidation), http.StatusBadRequest},
		{"invalid transition", fmt.Errorf("%w: vacancy completed -> new", storage.ErrInvalidTransition), http.StatusBadRequest},
		{"transaction failure", fmt.Errorf("%w: delete user 3: boom", storage.ErrTransactionFailure), http.StatusInternalServerError},
		{"unknown error", errors.New("pq: connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/x", func(c *fiber.Ctx) error { return fail(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.StatusCode)
			}
		})
	}
}

// Errors outside the taxonomy must not leak their cause to the client.
func TestFailDoesNotLeakUnknownErrors(t *testing.T) {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return fail(c, errors.New("pq: disk full on tablespace jobs"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if strings.Contains(string(body), "disk full") {
		t.Fatalf("response leaked the internal error: %s", body)
	}
	if !strings.Contains(string(body), "Internal server error") {
		t.Fatalf("expected the opaque message, got: %s", body)
	}
}
