package controller

import (
	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/pkg/serverutils"
	"ai-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReleaseNoteController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type releaseNoteController struct {
	releaseNoteService service.IReleaseNoteService
}

func NewReleaseNoteController(releaseNoteService service.IReleaseNoteService) IReleaseNoteController {
	return &releaseNoteController{releaseNoteService: releaseNoteService}
}

func (c *releaseNoteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/release-notes")
	h.Get("", c.Get)
	h.Post("", serverutils.AdminMiddleware, c.Create)
	h.Put("", serverutils.AdminMiddleware, c.Update)
	h.Delete("", serverutils.AdminMiddleware, c.Delete)
}

func (c *releaseNoteController) Get(ctx *fiber.Ctx) error {
	if idParam := ctx.Query("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			return serverutils.BadRequest("invalid id")
		}
		res, err := c.releaseNoteService.GetByID(ctx.Context(), id)
		if err != nil {
			return err
		}
		return ctx.JSON(res)
	}

	res, err := c.releaseNoteService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *releaseNoteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateReleaseNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.releaseNoteService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *releaseNoteController) Update(ctx *fiber.Ctx) error {
	id, err := requireIDQuery(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateReleaseNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}

	res, err := c.releaseNoteService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *releaseNoteController) Delete(ctx *fiber.Ctx) error {
	id, err := requireIDQuery(ctx)
	if err != nil {
		return err
	}

	if err := c.releaseNoteService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Release note deleted"})
}
