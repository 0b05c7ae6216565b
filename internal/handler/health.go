package handler

import (
	"context"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// Pinger is satisfied by *sqlx.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports dependency health
type HealthHandler struct {
	db    Pinger
	cache domain.Cache
}

// NewHealthHandler creates a health handler. cache may be nil.
func NewHealthHandler(db Pinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Warn("Health check: database unreachable", zap.Error(err))
		checks["database"] = "down"
		healthy = false
	} else {
		checks["database"] = "up"
	}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			// The service works without its cache.
			logger.Get().Warn("Health check: cache unreachable", zap.Error(err))
			checks["cache"] = "down"
		} else {
			checks["cache"] = "up"
		}
	}

	if !healthy {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Success: false, Status: "unavailable", Checks: checks})
	}
	return c.JSON(dto.HealthResponse{Success: true, Status: "ok", Checks: checks})
}
