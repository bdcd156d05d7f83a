package controller

import (
	"ai-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITriviaController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
}

type triviaController struct {
	triviaService service.ITriviaService
}

func NewTriviaController(triviaService service.ITriviaService) ITriviaController {
	return &triviaController{triviaService: triviaService}
}

func (c *triviaController) RegisterRoutes(r fiber.Router) {
	r.Get("/trivia", c.Get)
}

func (c *triviaController) Get(ctx *fiber.Ctx) error {
	res, err := c.triviaService.Generate(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
