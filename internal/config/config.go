package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Ai        AIConfig
	Retrieval RetrievalConfig
	Triage    TriageConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	LLMLogFilePath     string
	CorsAllowedOrigins string
	ServiceVersion     string
}

type AIConfig struct {
	StubMode      bool
	LLMProvider   string // "gemini" or "ollama"
	LLMModel      string // e.g. "gemini-pro", "llama3"
	OllamaBaseURL string
	GeminiApiKey  string
	DraftTimeout  int // seconds, bounds every external model call
}

// RetrievalConfig exposes the scoring weights and retrieval limits as
// tunables. Defaults match the shipped ranking behavior.
type RetrievalConfig struct {
	MinScore      float64
	TopK          int
	SnippetLength int
	TitleWeight   float64
	BodyWeight    float64
	TagWeight     float64
	CategoryBonus float64
}

// TriageConfig controls the auto-close decision attached to suggestions.
type TriageConfig struct {
	AutoCloseEnabled   bool
	DefaultThreshold   float64
	CategoryThresholds map[string]float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			LLMLogFilePath:     getEnv("LLM_LOG_FILE_PATH", "logs/llm_agent.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			ServiceVersion:     getEnv("SERVICE_VERSION", "1.0.0"),
		},
		Ai: AIConfig{
			StubMode:      getEnvAsBool("STUB_MODE", false),
			LLMProvider:   getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:      getEnv("LLM_MODEL", "gemini-pro"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GeminiApiKey:  getEnv("GEMINI_API_KEY", ""),
			DraftTimeout:  getEnvAsInt("DRAFT_TIMEOUT_SECONDS", 30),
		},
		Retrieval: RetrievalConfig{
			MinScore:      getEnvAsFloat("RETRIEVAL_MIN_SCORE", 0.1),
			TopK:          getEnvAsInt("RETRIEVAL_TOP_K", 3),
			SnippetLength: getEnvAsInt("RETRIEVAL_SNIPPET_LENGTH", 150),
			TitleWeight:   getEnvAsFloat("SCORE_TITLE_WEIGHT", 3.0),
			BodyWeight:    getEnvAsFloat("SCORE_BODY_WEIGHT", 1.0),
			TagWeight:     getEnvAsFloat("SCORE_TAG_WEIGHT", 2.0),
			CategoryBonus: getEnvAsFloat("SCORE_CATEGORY_BONUS", 2.0),
		},
		Triage: TriageConfig{
			AutoCloseEnabled: getEnvAsBool("AUTO_CLOSE_ENABLED", true),
			DefaultThreshold: getEnvAsFloat("CONFIDENCE_THRESHOLD", 0.78),
			CategoryThresholds: map[string]float64{
				"billing":  getEnvAsFloat("THRESHOLD_BILLING", 0.78),
				"tech":     getEnvAsFloat("THRESHOLD_TECH", 0.85),
				"shipping": getEnvAsFloat("THRESHOLD_SHIPPING", 0.75),
				"other":    getEnvAsFloat("THRESHOLD_OTHER", 0.80),
			},
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
