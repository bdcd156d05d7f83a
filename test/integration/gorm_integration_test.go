package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/repository/specification"
	"ai-chatbot-be/internal/repository/unitofwork"
	"ai-chatbot-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ChatSessionRepository())
	assert.NotNil(t, uow.ChatRepository())
	assert.NotNil(t, uow.PolicyRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	t.Run("session round trip", func(t *testing.T) {
		ctx := context.Background()
		uid := "it-" + uuid.New().String()

		session := &entity.ChatSession{
			Id:        uuid.New(),
			UserId:    uid,
			Title:     "Chat Baru",
			CreatedAt: time.Now(),
		}
		require.NoError(t, uow.ChatSessionRepository().Create(ctx, session))

		found, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: session.Id},
			specification.OwnedByUid{Uid: uid},
		)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Chat Baru", found.Title)
		assert.False(t, found.IsPinned)

		chat := &entity.Chat{
			Id:            uuid.New(),
			UserId:        uid,
			ChatSessionId: session.Id,
			Message:       "halo",
			Response:      "Halo juga!",
			CreatedAt:     time.Now(),
		}
		require.NoError(t, uow.ChatRepository().Create(ctx, chat))

		require.NoError(t, uow.ChatSessionRepository().Delete(ctx, session.Id))

		gone, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: session.Id})
		require.NoError(t, err)
		assert.Nil(t, gone)

		// Deleting a session does not cascade to its chats; history stays
		// addressable by (userId, sessionId).
		orphans, err := uow.ChatRepository().FindAll(ctx,
			specification.OwnedByUid{Uid: uid},
			specification.ByChatSessionID{ChatSessionID: session.Id},
		)
		require.NoError(t, err)
		require.Len(t, orphans, 1)
		assert.Equal(t, "halo", orphans[0].Message)

		require.NoError(t, uow.ChatRepository().Delete(ctx, chat.Id))
	})
}
