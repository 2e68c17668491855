package handler

import (
	"context"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/response"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
	hub   *ws.Hub
}

func NewHealthHandler(db database.DB, redis *cache.Redis, hub *ws.Hub) *HealthHandler {
	return &HealthHandler{db: db, cache: redis, hub: hub}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Get)
}

func (h *HealthHandler) Get(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	postgres := "ok"
	if h.db == nil {
		postgres = "unconfigured"
	} else if err := h.db.Ping(ctx); err != nil {
		postgres = "unavailable"
	}

	redis := "ok"
	if err := h.cache.Ping(ctx); err != nil {
		redis = "unavailable"
	}

	status := fiber.StatusOK
	if postgres != "ok" {
		status = fiber.StatusServiceUnavailable
	}

	return response.Success(c, status, response.DefaultMessageForStatus(status), fiber.Map{
		"postgres":   postgres,
		"redis":      redis,
		"ws_clients": h.hub.ClientCount(),
	})
}
