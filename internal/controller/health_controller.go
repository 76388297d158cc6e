package controller

import (
	"medisearch-be/internal/pkg/serverutils"
	"medisearch-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	db    *gorm.DB
	cache store.CacheStore
}

func NewHealthController(db *gorm.DB, cache store.CacheStore) IHealthController {
	return &healthController{db: db, cache: cache}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	dbStatus := "up"
	if sqlDB, err := c.db.DB(); err != nil || sqlDB.PingContext(ctx.Context()) != nil {
		dbStatus = "down"
	}

	cacheStatus := "up"
	if _, err := c.cache.Get(ctx.Context(), "health:probe"); err != nil {
		cacheStatus = "down"
	}

	status := fiber.Map{
		"database": dbStatus,
		"cache":    cacheStatus,
	}

	if dbStatus == "down" {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, "degraded"))
	}
	return ctx.JSON(serverutils.SuccessResponse("ok", status))
}
