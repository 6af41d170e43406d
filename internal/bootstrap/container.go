package bootstrap

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"ai-helpdesk-be/internal/config"
	"ai-helpdesk-be/internal/controller"
	"ai-helpdesk-be/internal/pkg/logger"
	"ai-helpdesk-be/internal/repository/memory"
	"ai-helpdesk-be/internal/service"
	"ai-helpdesk-be/pkg/agent"
	"ai-helpdesk-be/pkg/classifier"
	"ai-helpdesk-be/pkg/events"
	"ai-helpdesk-be/pkg/kb"
	"ai-helpdesk-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	TriageController controller.ITriageController
	KBController     controller.IKBController
	AuditController  controller.IAuditController

	// Background Services (Exposed for main.go to run)
	AuditService service.IAuditService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	llmLogger := initLLMLogger(cfg.App.LLMLogFilePath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	auditPublisher := events.NewWatermillPublisher(pubSub)

	// 3. Knowledge Base & Classification Engines
	store := kb.NewStaticStore(kb.DefaultCorpus())
	scorer := kb.NewScorer(kb.Weights{
		Title:         cfg.Retrieval.TitleWeight,
		Body:          cfg.Retrieval.BodyWeight,
		Tags:          cfg.Retrieval.TagWeight,
		CategoryBonus: cfg.Retrieval.CategoryBonus,
	})
	retriever := kb.NewRetriever(store, scorer, kb.Config{
		MinScore:      cfg.Retrieval.MinScore,
		TopK:          cfg.Retrieval.TopK,
		SnippetLength: cfg.Retrieval.SnippetLength,
	})
	keywordClassifier := classifier.NewKeywordClassifier(classifier.DefaultRules())
	stubProvider := agent.NewDeterministicProvider(keywordClassifier)

	// Initialize Agent Provider based on Config
	agentProvider := initAgentProvider(cfg, stubProvider, llmLogger)

	// 4. In-Memory Storage
	suggestionRepo := memory.NewSuggestionRepository()
	auditRepo := memory.NewAuditRepository()

	// 5. Services
	triageService := service.NewTriageService(
		agentProvider,
		stubProvider,
		retriever,
		suggestionRepo,
		auditPublisher,
		sysLogger,
		cfg.Triage,
	)
	kbService := service.NewKBService(store, retriever)
	auditService := service.NewAuditService(pubSub, auditRepo, sysLogger)

	// 6. Controllers
	triageController := controller.NewTriageController(triageService)
	kbController := controller.NewKBController(kbService)
	auditController := controller.NewAuditController(auditService)

	return &Container{
		TriageController: triageController,
		KBController:     kbController,
		AuditController:  auditController,
		AuditService:     auditService,
	}
}

// initAgentProvider picks the suggestion backend. The deterministic
// provider is used when stub mode is on or the configured model cannot
// be reached, so triage keeps working without external credentials.
func initAgentProvider(cfg *config.Config, stub *agent.DeterministicProvider, llmLogger *log.Logger) agent.Provider {
	if cfg.Ai.StubMode {
		log.Printf("[INFO] Using Agent Provider: STUB (deterministic)")
		return stub
	}
	if cfg.Ai.LLMProvider == "gemini" && cfg.Ai.GeminiApiKey == "" {
		log.Printf("[WARN] GEMINI_API_KEY not set, falling back to stub provider")
		return stub
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiApiKey,
	)
	if err != nil {
		log.Printf("[WARN] Failed to initialize LLM Provider: %v. Using stub provider", err)
		return stub
	}
	log.Printf("[INFO] Using Agent Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	return agent.NewExternalModelProvider(
		llmProvider,
		stub,
		llmLogger,
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		time.Duration(cfg.Ai.DraftTimeout)*time.Second,
	)
}

func initLLMLogger(logPath string) *log.Logger {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-AGENT] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
