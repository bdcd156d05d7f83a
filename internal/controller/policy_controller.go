package controller

import (
	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/pkg/serverutils"
	"ai-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPolicyController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type policyController struct {
	policyService service.IPolicyService
}

func NewPolicyController(policyService service.IPolicyService) IPolicyController {
	return &policyController{policyService: policyService}
}

func (c *policyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/policies")
	h.Get("", c.Get)
	h.Post("", serverutils.AdminMiddleware, c.Create)
	h.Put("", serverutils.AdminMiddleware, c.Update)
	h.Delete("", serverutils.AdminMiddleware, c.Delete)
}

func requireIDQuery(ctx *fiber.Ctx) (uuid.UUID, error) {
	idParam := ctx.Query("id")
	if idParam == "" {
		return uuid.Nil, serverutils.BadRequest("id is required")
	}
	id, err := uuid.Parse(idParam)
	if err != nil {
		return uuid.Nil, serverutils.BadRequest("invalid id")
	}
	return id, nil
}

// Get serves /api/policies: the full list, or a single policy when id or slug
// is given.
func (c *policyController) Get(ctx *fiber.Ctx) error {
	if idParam := ctx.Query("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			return serverutils.BadRequest("invalid id")
		}
		res, err := c.policyService.GetByID(ctx.Context(), id)
		if err != nil {
			return err
		}
		return ctx.JSON(res)
	}

	if slug := ctx.Query("slug"); slug != "" {
		res, err := c.policyService.GetBySlug(ctx.Context(), slug)
		if err != nil {
			return err
		}
		return ctx.JSON(res)
	}

	res, err := c.policyService.List(ctx.Context(), ctx.Query("type"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *policyController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePolicyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.policyService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *policyController) Update(ctx *fiber.Ctx) error {
	id, err := requireIDQuery(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdatePolicyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.policyService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *policyController) Delete(ctx *fiber.Ctx) error {
	id, err := requireIDQuery(ctx)
	if err != nil {
		return err
	}

	if err := c.policyService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Policy deleted"})
}
