package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatService struct {
	pinnedCalls []bool
	session     *dto.SessionResponse
	searchRes   []*dto.SessionSearchResponse
	reply       *dto.SendChatResponse
	err         error
}

func (s *stubChatService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	return s.session, s.err
}
func (s *stubChatService) GetAllSessions(ctx context.Context, userId string) ([]*dto.SessionResponse, error) {
	return []*dto.SessionResponse{s.session}, s.err
}
func (s *stubChatService) GetPinnedSessions(ctx context.Context, userId string) ([]*dto.SessionResponse, error) {
	return nil, s.err
}
func (s *stubChatService) GetSession(ctx context.Context, userId string, id uuid.UUID) (*dto.SessionResponse, error) {
	return s.session, s.err
}
func (s *stubChatService) RenameSession(ctx context.Context, userId string, id uuid.UUID, req *dto.RenameSessionRequest) (*dto.SessionResponse, error) {
	return s.session, s.err
}
func (s *stubChatService) PinSession(ctx context.Context, userId string, id uuid.UUID, isPinned bool) (*dto.SessionResponse, error) {
	s.pinnedCalls = append(s.pinnedCalls, isPinned)
	return s.session, s.err
}
func (s *stubChatService) DeleteSession(ctx context.Context, userId string, id uuid.UUID) error {
	return s.err
}
func (s *stubChatService) SearchSessions(ctx context.Context, userId, query string) ([]*dto.SessionSearchResponse, error) {
	return s.searchRes, s.err
}
func (s *stubChatService) SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	return s.reply, s.err
}
func (s *stubChatService) GetHistory(ctx context.Context, userId string, sessionId uuid.UUID) ([]*dto.ChatResponse, error) {
	return nil, s.err
}
func (s *stubChatService) GetChats(ctx context.Context, userId string) ([]*dto.ChatResponse, error) {
	return nil, s.err
}

func newChatTestApp(stub *stubChatService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewChatController(stub).RegisterRoutes(api)
	return app
}

func bearerToken(t *testing.T, uid string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uid,
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("default_secret"))
	require.NoError(t, err)
	return "Bearer " + signed
}

func TestPinSessionValidation(t *testing.T) {
	stub := &stubChatService{session: &dto.SessionResponse{Id: uuid.New(), IsPinned: true}}
	app := newChatTestApp(stub)
	sessionID := uuid.New().String()

	t.Run("missing isPinned", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/api/sessions/"+sessionID+"/pin", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, "uid-1"))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, stub.pinnedCalls)
	})

	t.Run("non-boolean isPinned", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/api/sessions/"+sessionID+"/pin", strings.NewReader(`{"isPinned": "yes"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, "uid-1"))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, stub.pinnedCalls)
	})

	t.Run("explicit false is honored", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/api/sessions/"+sessionID+"/pin", strings.NewReader(`{"isPinned": false}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, "uid-1"))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Len(t, stub.pinnedCalls, 1)
		assert.False(t, stub.pinnedCalls[0])
	})
}

func TestChatRoutesRequireToken(t *testing.T) {
	app := newChatTestApp(&stubChatService{})

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/sessions"},
		{"POST", "/api/chat"},
		{"GET", "/api/history"},
		{"GET", "/api/chats"},
	}

	for _, p := range paths {
		resp, err := app.Test(httptest.NewRequest(p.method, p.path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", p.method, p.path)
	}
}

func TestUserIDMismatchRejected(t *testing.T) {
	app := newChatTestApp(&stubChatService{})

	req := httptest.NewRequest("GET", "/api/sessions?userId=someone-else", nil)
	req.Header.Set("Authorization", bearerToken(t, "uid-1"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSendChat(t *testing.T) {
	stub := &stubChatService{reply: &dto.SendChatResponse{Reply: "halo!"}}
	app := newChatTestApp(stub)

	payload := `{"userId": "uid-1", "sessionId": "` + uuid.New().String() + `", "message": "halo"}`
	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, "uid-1"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.SendChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "halo!", body.Reply)
}

func TestGetHistoryRequiresSessionId(t *testing.T) {
	app := newChatTestApp(&stubChatService{})

	req := httptest.NewRequest("GET", "/api/history", nil)
	req.Header.Set("Authorization", bearerToken(t, "uid-1"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
