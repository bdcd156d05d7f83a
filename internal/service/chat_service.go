package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-chatbot-be/internal/constant"
	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/pkg/logger"
	"ai-chatbot-be/internal/pkg/serverutils"
	"ai-chatbot-be/internal/pkg/textutil"
	"ai-chatbot-be/internal/repository/specification"
	"ai-chatbot-be/internal/repository/unitofwork"
	"ai-chatbot-be/pkg/llm"

	"github.com/google/uuid"
)

type IChatService interface {
	CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetAllSessions(ctx context.Context, userId string) ([]*dto.SessionResponse, error)
	GetPinnedSessions(ctx context.Context, userId string) ([]*dto.SessionResponse, error)
	GetSession(ctx context.Context, userId string, id uuid.UUID) (*dto.SessionResponse, error)
	RenameSession(ctx context.Context, userId string, id uuid.UUID, request *dto.RenameSessionRequest) (*dto.SessionResponse, error)
	PinSession(ctx context.Context, userId string, id uuid.UUID, isPinned bool) (*dto.SessionResponse, error)
	DeleteSession(ctx context.Context, userId string, id uuid.UUID) error
	SearchSessions(ctx context.Context, userId, query string) ([]*dto.SessionSearchResponse, error)

	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context, userId string, sessionId uuid.UUID) ([]*dto.ChatResponse, error)
	GetChats(ctx context.Context, userId string) ([]*dto.ChatResponse, error)
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, llmProvider llm.LLMProvider, log logger.ILogger) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
		logger:      log,
	}
}

func toSessionResponse(s *entity.ChatSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:        s.Id,
		Title:     s.Title,
		Preview:   s.Preview,
		IsPinned:  s.IsPinned,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toChatResponse(c *entity.Chat) *dto.ChatResponse {
	return &dto.ChatResponse{
		Id:        c.Id,
		SessionId: c.ChatSessionId,
		Message:   c.Message,
		Response:  c.Response,
		CreatedAt: c.CreatedAt,
	}
}

// Sessions

func (cs *chatService) CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	title := strings.TrimSpace(request.Title)
	if title == "" {
		title = constant.DefaultSessionTitle
	}

	session := entity.ChatSession{
		Id:        uuid.New(),
		UserId:    request.UserId,
		Title:     title,
		CreatedAt: time.Now(),
	}

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	return toSessionResponse(&session), nil
}

func (cs *chatService) GetAllSessions(ctx context.Context, userId string) ([]*dto.SessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.OwnedByUid{Uid: userId},
		specification.PinnedFirst{},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		response = append(response, toSessionResponse(s))
	}
	return response, nil
}

func (cs *chatService) GetPinnedSessions(ctx context.Context, userId string) ([]*dto.SessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.OwnedByUid{Uid: userId},
		specification.PinnedOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		response = append(response, toSessionResponse(s))
	}
	return response, nil
}

// Sessions are addressed by id but scoped to their owner, so a foreign
// session id behaves exactly like a missing one.
func (cs *chatService) GetSession(ctx context.Context, userId string, id uuid.UUID) (*dto.SessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByUid{Uid: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NotFound("Session not found")
	}
	return toSessionResponse(session), nil
}

func (cs *chatService) RenameSession(ctx context.Context, userId string, id uuid.UUID, request *dto.RenameSessionRequest) (*dto.SessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatSessionRepository()

	session, err := repo.FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByUid{Uid: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NotFound("Session not found")
	}

	session.Title = request.Title
	if err := repo.Update(ctx, session); err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// PinSession is idempotent: pinning a pinned session keeps it pinned.
func (cs *chatService) PinSession(ctx context.Context, userId string, id uuid.UUID, isPinned bool) (*dto.SessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatSessionRepository()

	session, err := repo.FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByUid{Uid: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NotFound("Session not found")
	}

	session.IsPinned = isPinned
	if err := repo.Update(ctx, session); err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// DeleteSession removes the session row only. Its chats stay behind on
// purpose: history is addressed by (userId, sessionId) and remains queryable.
func (cs *chatService) DeleteSession(ctx context.Context, userId string, id uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatSessionRepository()

	session, err := repo.FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByUid{Uid: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return serverutils.NotFound("Session not found")
	}

	return repo.Delete(ctx, id)
}

// Search

func (cs *chatService) SearchSessions(ctx context.Context, userId, query string) ([]*dto.SessionSearchResponse, error) {
	results := make([]*dto.SessionSearchResponse, 0)
	if userId == "" || query == "" {
		return results, nil
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	// Pass 1: sessions whose title or preview match.
	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.OwnedByUid{Uid: userId},
		specification.SessionSearchQuery{Query: query},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool)
	for _, s := range sessions {
		seen[s.Id] = true
		results = append(results, &dto.SessionSearchResponse{SessionResponse: *toSessionResponse(s)})
	}

	// Pass 2: sessions reached through matching chat content.
	chats, err := uow.ChatRepository().FindAll(ctx,
		specification.OwnedByUid{Uid: userId},
		specification.ChatSearchQuery{Query: query},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	matchedText := make(map[uuid.UUID]string)
	sessionIds := make([]uuid.UUID, 0)
	for _, c := range chats {
		if seen[c.ChatSessionId] || matchedText[c.ChatSessionId] != "" {
			continue
		}
		snippet := textutil.BuildSnippet(c.Message, query)
		if snippet == "" {
			snippet = textutil.BuildSnippet(c.Response, query)
		}
		matchedText[c.ChatSessionId] = snippet
		sessionIds = append(sessionIds, c.ChatSessionId)
	}

	if len(sessionIds) > 0 {
		chatSessions, err := uow.ChatSessionRepository().FindAll(ctx,
			specification.ByIDs{IDs: sessionIds},
			specification.OwnedByUid{Uid: userId},
			specification.OrderBy{Field: "created_at", Desc: true},
		)
		if err != nil {
			return nil, err
		}
		for _, s := range chatSessions {
			if seen[s.Id] {
				continue
			}
			results = append(results, &dto.SessionSearchResponse{
				SessionResponse: *toSessionResponse(s),
				MatchedText:     matchedText[s.Id],
			})
		}
	}

	return results, nil
}

// Chat

func (cs *chatService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: request.SessionId},
		specification.OwnedByUid{Uid: request.UserId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NotFound("Session not found")
	}

	history := []llm.Message{
		{Role: constant.ChatRoleSystem, Content: constant.SystemPrompt},
		{Role: constant.ChatRoleUser, Content: request.Message},
	}
	reply, err := cs.llmProvider.Chat(ctx, history)
	if err != nil {
		return nil, serverutils.Internal(fmt.Sprintf("Failed to generate response: %v", err))
	}

	chat := entity.Chat{
		Id:            uuid.New(),
		UserId:        request.UserId,
		ChatSessionId: request.SessionId,
		Message:       request.Message,
		Response:      reply,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatRepository().Create(ctx, &chat); err != nil {
		return nil, err
	}

	cs.refreshSessionSummary(ctx, uow, session, request.Message)

	return &dto.SendChatResponse{Reply: reply}, nil
}

// refreshSessionSummary derives the title from the first message and keeps
// the preview mirroring the latest one. Failures are logged, never surfaced.
func (cs *chatService) refreshSessionSummary(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, message string) {
	if session.Title == constant.DefaultSessionTitle || session.Title == "" {
		if derived := textutil.DeriveTitle(message, constant.TitleMaxRunes); derived != "" {
			session.Title = derived
		}
	}
	session.Preview = textutil.TruncateRunes(message, constant.PreviewMaxRunes)

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		cs.logger.Warn("ChatService", "Failed to update session summary", map[string]interface{}{
			"session_id": session.Id,
			"error":      err.Error(),
		})
	}
}

func (cs *chatService) GetHistory(ctx context.Context, userId string, sessionId uuid.UUID) ([]*dto.ChatResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chats, err := uow.ChatRepository().FindAll(ctx,
		specification.OwnedByUid{Uid: userId},
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ChatResponse, 0, len(chats))
	for _, c := range chats {
		response = append(response, toChatResponse(c))
	}
	return response, nil
}

func (cs *chatService) GetChats(ctx context.Context, userId string) ([]*dto.ChatResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chats, err := uow.ChatRepository().FindAll(ctx,
		specification.OwnedByUid{Uid: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ChatResponse, 0, len(chats))
	for _, c := range chats {
		response = append(response, toChatResponse(c))
	}
	return response, nil
}
