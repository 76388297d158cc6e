package controller

import (
	"errors"

	"medisearch-be/internal/dto"
	"medisearch-be/internal/pkg/serverutils"
	"medisearch-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConnectionController interface {
	RegisterRoutes(r fiber.Router)
	RequestConnection(ctx *fiber.Ctx) error
	ListConnections(ctx *fiber.Ctx) error
}

type connectionController struct {
	service service.IConnectionService
}

func NewConnectionController(service service.IConnectionService) IConnectionController {
	return &connectionController{service: service}
}

func (c *connectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/connections")
	h.Use(serverutils.JwtMiddleware) // connections are always viewer scoped
	h.Post("/", c.RequestConnection)
	h.Get("/", c.ListConnections)
}

func (c *connectionController) RequestConnection(ctx *fiber.Ctx) error {
	requesterId := viewerId(ctx)
	if requesterId == nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid token"))
	}

	var req dto.CreateConnectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.RequestConnection(ctx.Context(), *requesterId, &req)
	if err != nil {
		return connectionError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success request connection", res))
}

func (c *connectionController) ListConnections(ctx *fiber.Ctx) error {
	requesterId := viewerId(ctx)
	if requesterId == nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid token"))
	}

	res, err := c.service.ListConnections(ctx.Context(), *requesterId)
	if err != nil {
		return connectionError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list connections", res))
}

func connectionError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrResearcherNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	case errors.Is(err, service.ErrConnectionExists):
		return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
}
