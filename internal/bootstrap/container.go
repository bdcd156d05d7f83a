package bootstrap

import (
	"context"
	"log"

	"ai-chatbot-be/internal/config"
	"ai-chatbot-be/internal/controller"
	"ai-chatbot-be/internal/handler"
	"ai-chatbot-be/internal/pkg/logger"
	"ai-chatbot-be/internal/pkg/mailer"
	"ai-chatbot-be/internal/pkg/serverutils"
	"ai-chatbot-be/internal/repository/implementation"
	"ai-chatbot-be/internal/repository/unitofwork"
	"ai-chatbot-be/internal/service"
	"ai-chatbot-be/internal/websocket"
	"ai-chatbot-be/pkg/llm/factory"

	pktNats "ai-chatbot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// eventsTopic is the in-process watermill topic bridged to NATS.
const eventsTopic = "app_events"

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	OAuthController       controller.IOAuthController
	UserController        controller.IUserController
	ChatController        controller.IChatController
	PolicyController      controller.IPolicyController
	ReleaseNoteController controller.IReleaseNoteController
	ReportController      controller.IReportController
	TriviaController      controller.ITriviaController

	// Background services, run by main.go
	ConsumerService service.IConsumerService

	// WebSockets & notifications
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	serverutils.ConfigureJWTSecret(cfg.App.JwtSecret)

	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// In-process event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// LLM provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Llm.Provider,
		cfg.Llm.Model,
		cfg.Llm.GroqAPIKey,
		cfg.Llm.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM provider: %v", err)
	}
	log.Printf("[INFO] Using LLM provider: %s (%s)", cfg.Llm.Provider, cfg.Llm.Model)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Services
	publisherService := service.NewPublisherService(pubSub, eventsTopic)
	consumerService := service.NewConsumerService(pubSub, eventsTopic, natsPub, sysLogger)

	authService := service.NewAuthService(uowFactory, emailService, publisherService, sysLogger)
	oauthService := service.NewOAuthService(uowFactory, sysLogger)
	userService := service.NewUserService(uowFactory)
	chatService := service.NewChatService(uowFactory, llmProvider, sysLogger)
	policyService := service.NewPolicyService(uowFactory)
	releaseNoteService := service.NewReleaseNoteService(uowFactory, publisherService, sysLogger)
	reportService := service.NewReportService(uowFactory, publisherService, sysLogger)
	triviaService := service.NewTriviaService(llmProvider, sysLogger)

	// Notification pipeline
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	return &Container{
		AuthController:        controller.NewAuthController(authService),
		OAuthController:       controller.NewOAuthController(oauthService),
		UserController:        controller.NewUserController(userService),
		ChatController:        controller.NewChatController(chatService),
		PolicyController:      controller.NewPolicyController(policyService),
		ReleaseNoteController: controller.NewReleaseNoteController(releaseNoteService),
		ReportController:      controller.NewReportController(reportService),
		TriviaController:      controller.NewTriviaController(triviaService),

		ConsumerService: consumerService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
