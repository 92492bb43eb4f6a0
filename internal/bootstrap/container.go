package bootstrap

import (
	"context"
	"log"
	"time"

	"zyglio-be/internal/config"
	"zyglio-be/internal/controller"
	"zyglio-be/internal/pkg/logger"
	"zyglio-be/internal/repository/contract"
	"zyglio-be/internal/repository/memory"
	"zyglio-be/internal/repository/redisstore"
	"zyglio-be/internal/repository/unitofwork"
	"zyglio-be/internal/service"
	"zyglio-be/pkg/embedding"
	"zyglio-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ProcedureController controller.IProcedureController
	InterviewController controller.IInterviewController
	ReferenceController controller.IReferenceController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		// Buffered so a slow consumer never stalls the request path.
		gochannel.Config{OutputChannelBuffer: 64},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
		sysLogger.Info("Bootstrap", "Using Embedding Provider: OLLAMA", map[string]interface{}{"model": cfg.Ai.EmbeddingModel})
	} else {
		embeddingProvider = embedding.NewDeepSeekProvider(cfg.Ai.LLMApiKey)
		sysLogger.Info("Bootstrap", "Using Embedding Provider: DEEPSEEK", nil)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.LLMApiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	sysLogger.Info("Bootstrap", "Using LLM Provider", map[string]interface{}{"provider": cfg.Ai.LLMProvider, "model": cfg.Ai.LLMModel})

	// 4. Session Storage
	var sessionRepo contract.InterviewSessionRepository
	if cfg.Session.Backend == "redis" {
		opt, err := redis.ParseURL(cfg.Session.RedisURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{Addr: cfg.Session.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
		}
		ttl := time.Duration(cfg.Session.RedisTTLDays) * 24 * time.Hour
		sessionRepo = redisstore.NewSessionRepository(rdb, ttl)
		sysLogger.Info("Bootstrap", "Using Session Backend: REDIS", map[string]interface{}{"ttl": ttl.String()})
	} else {
		sessionRepo = memory.NewSessionRepository()
		sysLogger.Info("Bootstrap", "Using Session Backend: MEMORY", nil)
	}

	// 5. Services
	eventLogger := logger.NewIsolatedLogger("logs/interview_events.log")
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.CompletedTopicName,
		uowFactory,
		eventLogger,
	)

	procedureService := service.NewProcedureService(uowFactory)
	referenceService := service.NewReferenceService(uowFactory, embeddingProvider)
	interviewService := service.NewInterviewService(
		uowFactory,
		llmProvider,
		sessionRepo,
		pubSub,
		cfg.App.CompletedTopicName,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		ProcedureController: controller.NewProcedureController(procedureService),
		InterviewController: controller.NewInterviewController(interviewService),
		ReferenceController: controller.NewReferenceController(referenceService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
