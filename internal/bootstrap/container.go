package bootstrap

import (
	"log"

	"college-buddy-be/internal/config"
	"college-buddy-be/internal/controller"
	"college-buddy-be/internal/pkg/logger"
	"college-buddy-be/internal/repository/memory"
	"college-buddy-be/internal/repository/unitofwork"
	"college-buddy-be/internal/service"
	"college-buddy-be/pkg/advisor/retrieve"
	"college-buddy-be/pkg/embedding"
	"college-buddy-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AdvisorController  controller.IAdvisorController
	DocumentController controller.IDocumentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.EmbeddingModel,
			cfg.Ai.OllamaDimension,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. In-Memory Conversation State
	conversationRepo := memory.NewConversationRepository()

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Ingest.TopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ingest.TopicName,
		uowFactory,
		embeddingProvider,
		cfg.Ingest.ChunkSize,
		cfg.Ingest.PacingDelay,
	)

	retriever := retrieve.NewRetriever(
		embeddingProvider,
		unitofwork.NewUnitOfWork(db).DocumentChunkRepository(),
		log.Default(),
	)

	advisorService := service.NewAdvisorService(
		uowFactory,
		conversationRepo,
		llmProvider,
		retriever,
		cfg.Ai.TopKOriginal,
		cfg.Ai.TopKCombined,
	)
	documentService := service.NewDocumentService(uowFactory, publisherService, sysLogger)

	// 6. Controllers
	advisorController := controller.NewAdvisorController(advisorService)
	documentController := controller.NewDocumentController(documentService)

	return &Container{
		AdvisorController:  advisorController,
		DocumentController: documentController,
		ConsumerService:    consumerService,
	}
}
