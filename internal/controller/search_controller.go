package controller

import (
	"errors"

	"medisearch-be/internal/dto"
	"medisearch-be/internal/pkg/serverutils"
	"medisearch-be/internal/service"
	"medisearch-be/pkg/fedsearch"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	SearchTrials(ctx *fiber.Ctx) error
	SearchPublications(ctx *fiber.Ctx) error
	SearchResearchers(ctx *fiber.Ctx) error
}

type searchController struct {
	service service.ISearchService
}

func NewSearchController(service service.ISearchService) ISearchController {
	return &searchController{service: service}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search")
	h.Use(serverutils.OptionalJwtMiddleware) // public, token only adds decoration
	h.Get("/trials", c.SearchTrials)
	h.Get("/publications", c.SearchPublications)
	h.Get("/researchers", c.SearchResearchers)
}

func (c *searchController) SearchTrials(ctx *fiber.Ctx) error {
	req, err := parseSearchRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SearchTrials(ctx.Context(), req)
	if err != nil {
		return searchError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search trials", res))
}

func (c *searchController) SearchPublications(ctx *fiber.Ctx) error {
	req, err := parseSearchRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SearchPublications(ctx.Context(), req)
	if err != nil {
		return searchError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search publications", res))
}

func (c *searchController) SearchResearchers(ctx *fiber.Ctx) error {
	req, err := parseSearchRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SearchResearchers(ctx.Context(), req, viewerId(ctx))
	if err != nil {
		return searchError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search researchers", res))
}

func parseSearchRequest(ctx *fiber.Ctx) (*dto.SearchRequest, error) {
	var req dto.SearchRequest
	if err := ctx.QueryParser(&req); err != nil {
		return nil, err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	return &req, nil
}

// viewerId returns the authenticated user's id, or nil for anonymous
// requests.
func viewerId(ctx *fiber.Ctx) *uuid.UUID {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return nil
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil
	}
	return &userId
}

func searchError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, fedsearch.ErrInvalidQuery) {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
}
