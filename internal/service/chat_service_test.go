package service

import (
	"context"
	"testing"
	"time"

	"ai-chatbot-be/internal/constant"
	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/pkg/logger"
	"ai-chatbot-be/internal/pkg/serverutils"
	"ai-chatbot-be/internal/repository/contract"
	"ai-chatbot-be/internal/repository/specification"
	"ai-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repository fakes. FindAll results are queued in call order;
// FindOne honors OwnedByUid so foreign sessions come back as missing.

type fakeSessionRepo struct {
	findOneResult *entity.ChatSession
	findAllQueue  [][]*entity.ChatSession
	findAllSpecs  [][]specification.Specification
	created       []*entity.ChatSession
	updated       []*entity.ChatSession
	deleted       []uuid.UUID
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	r.created = append(r.created, session)
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	r.updated = append(r.updated, session)
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	if r.findOneResult == nil {
		return nil, nil
	}
	for _, s := range specs {
		if owned, ok := s.(specification.OwnedByUid); ok && owned.Uid != r.findOneResult.UserId {
			return nil, nil
		}
	}
	out := *r.findOneResult
	return &out, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	r.findAllSpecs = append(r.findAllSpecs, specs)
	if len(r.findAllQueue) == 0 {
		return nil, nil
	}
	next := r.findAllQueue[0]
	r.findAllQueue = r.findAllQueue[1:]
	return next, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeChatRepo struct {
	findAllQueue [][]*entity.Chat
	created      []*entity.Chat
}

func (r *fakeChatRepo) Create(ctx context.Context, chat *entity.Chat) error {
	r.created = append(r.created, chat)
	return nil
}

func (r *fakeChatRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeChatRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error) {
	return nil, nil
}

func (r *fakeChatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error) {
	if len(r.findAllQueue) == 0 {
		return nil, nil
	}
	next := r.findAllQueue[0]
	r.findAllQueue = r.findAllQueue[1:]
	return next, nil
}

func (r *fakeChatRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeUnitOfWork struct {
	sessions *fakeSessionRepo
	chats    *fakeChatRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return nil }
func (u *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return u.sessions
}
func (u *fakeUnitOfWork) ChatRepository() contract.ChatRepository           { return u.chats }
func (u *fakeUnitOfWork) PolicyRepository() contract.PolicyRepository       { return nil }
func (u *fakeUnitOfWork) ReleaseNoteRepository() contract.ReleaseNoteRepository {
	return nil
}
func (u *fakeUnitOfWork) ReportRepository() contract.ReportRepository { return nil }

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newChatServiceForTest(sessions *fakeSessionRepo, chats *fakeChatRepo, llmFake *fakeLLM) IChatService {
	factory := &fakeUowFactory{uow: &fakeUnitOfWork{sessions: sessions, chats: chats}}
	return NewChatService(factory, llmFake, logger.NewIsolatedLogger("logs/test.log"))
}

func TestSearchSessions(t *testing.T) {
	t.Run("message-only match carries a snippet", func(t *testing.T) {
		session := &entity.ChatSession{
			Id:     uuid.New(),
			UserId: "uid-1",
			Title:  "Belajar Go",
		}
		chat := &entity.Chat{
			Id:            uuid.New(),
			UserId:        "uid-1",
			ChatSessionId: session.Id,
			Message:       "berapa harga kursus golang sekarang",
			CreatedAt:     time.Now(),
		}
		sessions := &fakeSessionRepo{findAllQueue: [][]*entity.ChatSession{
			{},        // title/preview pass: no hits
			{session}, // lookup of sessions reached through chats
		}}
		chats := &fakeChatRepo{findAllQueue: [][]*entity.Chat{{chat}}}
		svc := newChatServiceForTest(sessions, chats, &fakeLLM{})

		results, err := svc.SearchSessions(context.Background(), "uid-1", "harga")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, session.Id, results[0].Id)
		assert.NotEmpty(t, results[0].MatchedText)
		assert.Contains(t, results[0].MatchedText, "harga")
	})

	t.Run("session and message hits dedupe by id", func(t *testing.T) {
		session := &entity.ChatSession{
			Id:     uuid.New(),
			UserId: "uid-1",
			Title:  "Harga langganan",
		}
		chat := &entity.Chat{
			Id:            uuid.New(),
			UserId:        "uid-1",
			ChatSessionId: session.Id,
			Message:       "berapa harga paket premium",
		}
		sessions := &fakeSessionRepo{findAllQueue: [][]*entity.ChatSession{{session}}}
		chats := &fakeChatRepo{findAllQueue: [][]*entity.Chat{{chat}}}
		svc := newChatServiceForTest(sessions, chats, &fakeLLM{})

		results, err := svc.SearchSessions(context.Background(), "uid-1", "harga")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, session.Id, results[0].Id)
		// Title hits do not attach a message snippet.
		assert.Empty(t, results[0].MatchedText)
		// The ByIDs lookup never runs when everything deduped away.
		assert.Len(t, sessions.findAllSpecs, 1)
	})

	t.Run("empty query returns empty without querying", func(t *testing.T) {
		sessions := &fakeSessionRepo{}
		svc := newChatServiceForTest(sessions, &fakeChatRepo{}, &fakeLLM{})

		results, err := svc.SearchSessions(context.Background(), "uid-1", "")
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Empty(t, sessions.findAllSpecs)
	})
}

func TestSendChatSessionSummary(t *testing.T) {
	newSession := func(title string) *entity.ChatSession {
		return &entity.ChatSession{
			Id:        uuid.New(),
			UserId:    "uid-1",
			Title:     title,
			CreatedAt: time.Now(),
		}
	}

	t.Run("first message names a default-titled session", func(t *testing.T) {
		session := newSession(constant.DefaultSessionTitle)
		sessions := &fakeSessionRepo{findOneResult: session}
		chats := &fakeChatRepo{}
		svc := newChatServiceForTest(sessions, chats, &fakeLLM{response: "Halo!"})

		res, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
			UserId:    "uid-1",
			SessionId: session.Id,
			Message:   "halo apa kabar",
		})
		require.NoError(t, err)
		assert.Equal(t, "Halo!", res.Reply)

		require.Len(t, chats.created, 1)
		assert.Equal(t, "halo apa kabar", chats.created[0].Message)
		assert.Equal(t, "Halo!", chats.created[0].Response)

		require.Len(t, sessions.updated, 1)
		assert.Equal(t, "Halo apa kabar", sessions.updated[0].Title)
		assert.Equal(t, "halo apa kabar", sessions.updated[0].Preview)
	})

	t.Run("custom title survives new messages", func(t *testing.T) {
		session := newSession("Belajar Go")
		sessions := &fakeSessionRepo{findOneResult: session}
		svc := newChatServiceForTest(sessions, &fakeChatRepo{}, &fakeLLM{response: "Tentu."})

		_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
			UserId:    "uid-1",
			SessionId: session.Id,
			Message:   "jelaskan goroutine",
		})
		require.NoError(t, err)

		require.Len(t, sessions.updated, 1)
		assert.Equal(t, "Belajar Go", sessions.updated[0].Title)
		assert.Equal(t, "jelaskan goroutine", sessions.updated[0].Preview)
	})
}

func TestSessionOperationsScopedToOwner(t *testing.T) {
	session := &entity.ChatSession{
		Id:     uuid.New(),
		UserId: "owner-uid",
		Title:  "Rahasia",
	}

	requireNotFound := func(t *testing.T, err error) {
		t.Helper()
		require.Error(t, err)
		httpErr, ok := err.(*serverutils.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 404, httpErr.Code)
	}

	t.Run("get", func(t *testing.T) {
		sessions := &fakeSessionRepo{findOneResult: session}
		svc := newChatServiceForTest(sessions, &fakeChatRepo{}, &fakeLLM{})

		_, err := svc.GetSession(context.Background(), "other-uid", session.Id)
		requireNotFound(t, err)
	})

	t.Run("rename", func(t *testing.T) {
		sessions := &fakeSessionRepo{findOneResult: session}
		svc := newChatServiceForTest(sessions, &fakeChatRepo{}, &fakeLLM{})

		_, err := svc.RenameSession(context.Background(), "other-uid", session.Id, &dto.RenameSessionRequest{Title: "Hijacked"})
		requireNotFound(t, err)
		assert.Empty(t, sessions.updated)
	})

	t.Run("pin", func(t *testing.T) {
		sessions := &fakeSessionRepo{findOneResult: session}
		svc := newChatServiceForTest(sessions, &fakeChatRepo{}, &fakeLLM{})

		_, err := svc.PinSession(context.Background(), "other-uid", session.Id, true)
		requireNotFound(t, err)
		assert.Empty(t, sessions.updated)
	})

	t.Run("delete", func(t *testing.T) {
		sessions := &fakeSessionRepo{findOneResult: session}
		svc := newChatServiceForTest(sessions, &fakeChatRepo{}, &fakeLLM{})

		err := svc.DeleteSession(context.Background(), "other-uid", session.Id)
		requireNotFound(t, err)
		assert.Empty(t, sessions.deleted)
	})

	t.Run("owner passes through", func(t *testing.T) {
		sessions := &fakeSessionRepo{findOneResult: session}
		svc := newChatServiceForTest(sessions, &fakeChatRepo{}, &fakeLLM{})

		res, err := svc.GetSession(context.Background(), "owner-uid", session.Id)
		require.NoError(t, err)
		assert.Equal(t, session.Id, res.Id)

		require.NoError(t, svc.DeleteSession(context.Background(), "owner-uid", session.Id))
		assert.Equal(t, []uuid.UUID{session.Id}, sessions.deleted)
	})
}
