package controller

import (
	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/pkg/serverutils"
	"ai-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetSessions(ctx *fiber.Ctx) error
	GetPinnedSessions(ctx *fiber.Ctx) error
	SearchSessions(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	RenameSession(ctx *fiber.Ctx) error
	PinSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	GetChats(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{chatService: chatService}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Use("/sessions", serverutils.JwtMiddleware)
	r.Use("/chat", serverutils.JwtMiddleware)
	r.Use("/history", serverutils.JwtMiddleware)
	r.Use("/chats", serverutils.JwtMiddleware)

	// Static paths before :id so "pinned" is not parsed as a session id.
	r.Get("/sessions/pinned", c.GetPinnedSessions)
	r.Get("/sessions/search", c.SearchSessions)
	r.Get("/sessions", c.GetSessions)
	r.Post("/sessions", c.CreateSession)
	r.Get("/sessions/:id", c.GetSession)
	r.Put("/sessions/:id", c.RenameSession)
	r.Patch("/sessions/:id/pin", c.PinSession)
	r.Delete("/sessions/:id", c.DeleteSession)

	r.Post("/chat", c.SendChat)
	r.Get("/history", c.GetHistory)
	r.Get("/chats", c.GetChats)
}

// resolveUserID returns the token subject, rejecting requests whose explicit
// userId does not match it.
func resolveUserID(ctx *fiber.Ctx, requested string) (string, error) {
	uid, err := serverutils.UserIDFromLocals(ctx)
	if err != nil {
		return "", err
	}
	if requested != "" && requested != uid {
		return "", fiber.NewError(fiber.StatusForbidden, "userId does not match the token subject")
	}
	return uid, nil
}

func parseSessionID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.BadRequest("invalid session id")
	}
	return id, nil
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}

	userId, err := resolveUserID(ctx, req.UserId)
	if err != nil {
		return err
	}
	req.UserId = userId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.CreateSession(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *chatController) GetSessions(ctx *fiber.Ctx) error {
	userId, err := resolveUserID(ctx, ctx.Query("userId"))
	if err != nil {
		return err
	}

	res, err := c.chatService.GetAllSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) GetPinnedSessions(ctx *fiber.Ctx) error {
	userId, err := resolveUserID(ctx, ctx.Query("userId"))
	if err != nil {
		return err
	}

	res, err := c.chatService.GetPinnedSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) SearchSessions(ctx *fiber.Ctx) error {
	userId, err := resolveUserID(ctx, ctx.Query("userId"))
	if err != nil {
		return err
	}

	res, err := c.chatService.SearchSessions(ctx.Context(), userId, ctx.Query("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) GetSession(ctx *fiber.Ctx) error {
	id, err := parseSessionID(ctx)
	if err != nil {
		return err
	}
	userId, err := resolveUserID(ctx, "")
	if err != nil {
		return err
	}

	res, err := c.chatService.GetSession(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) RenameSession(ctx *fiber.Ctx) error {
	id, err := parseSessionID(ctx)
	if err != nil {
		return err
	}

	var req dto.RenameSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	userId, err := resolveUserID(ctx, "")
	if err != nil {
		return err
	}

	res, err := c.chatService.RenameSession(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) PinSession(ctx *fiber.Ctx) error {
	id, err := parseSessionID(ctx)
	if err != nil {
		return err
	}

	var req dto.PinSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("isPinned must be a boolean")
	}
	if req.IsPinned == nil {
		return serverutils.BadRequest("isPinned must be a boolean")
	}
	userId, err := resolveUserID(ctx, "")
	if err != nil {
		return err
	}

	res, err := c.chatService.PinSession(ctx.Context(), userId, id, *req.IsPinned)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	id, err := parseSessionID(ctx)
	if err != nil {
		return err
	}

	userId, err := resolveUserID(ctx, "")
	if err != nil {
		return err
	}

	if err := c.chatService.DeleteSession(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Session deleted"})
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}

	userId, err := resolveUserID(ctx, req.UserId)
	if err != nil {
		return err
	}
	req.UserId = userId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendChat(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	userId, err := resolveUserID(ctx, ctx.Query("userId"))
	if err != nil {
		return err
	}

	sessionIdParam := ctx.Query("sessionId")
	if sessionIdParam == "" {
		return serverutils.BadRequest("sessionId is required")
	}
	sessionId, err := uuid.Parse(sessionIdParam)
	if err != nil {
		return serverutils.BadRequest("invalid session id")
	}

	res, err := c.chatService.GetHistory(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) GetChats(ctx *fiber.Ctx) error {
	userId, err := resolveUserID(ctx, ctx.Query("userId"))
	if err != nil {
		return err
	}

	res, err := c.chatService.GetChats(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
