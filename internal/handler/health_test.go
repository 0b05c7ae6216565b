package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"trivia-api/internal/handler"
	"trivia-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

type stubCache struct{ pingErr error }

func (stubCache) Get(context.Context, string) (string, error)              { return "", nil }
func (stubCache) Set(context.Context, string, string, time.Duration) error { return nil }
func (stubCache) Delete(context.Context, string) error                     { return nil }
func (c stubCache) Ping(context.Context) error                             { return c.pingErr }

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		db       error
		cache    error
		status   int
		contains string
	}{
		{name: "all up", status: http.StatusOK, contains: `"status":"ok"`},
		{name: "cache down is degraded but ok", cache: errors.New("redis"), status: http.StatusOK, contains: `"cache":"down"`},
		{name: "database down", db: errors.New("pg"), status: http.StatusServiceUnavailable, contains: `"database":"down"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
			h := handler.NewHealthHandler(stubPinger{err: tt.db}, stubCache{pingErr: tt.cache})
			app.Get("/healthz", h.Health)

			resp, raw := doRequest(t, app, http.MethodGet, "/healthz", nil)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Contains(t, string(raw), tt.contains)
		})
	}
}
