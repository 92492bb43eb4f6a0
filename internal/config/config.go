package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Session  SessionConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	JwtSecret          string
	CompletedTopicName string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	LLMProvider       string // "deepseek" or "ollama"
	LLMModel          string
	LLMBaseURL        string
	LLMApiKey         string
	EmbeddingProvider string // "deepseek" or "ollama"
	EmbeddingModel    string
	OllamaBaseURL     string
}

type SessionConfig struct {
	Backend      string // "memory" or "redis"
	RedisURL     string
	RedisTTLDays int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
			CompletedTopicName: getEnv("INTERVIEW_COMPLETED_TOPIC_NAME", "INTERVIEW_COMPLETED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "deepseek"),
			LLMModel:          getEnv("LLM_MODEL", "deepseek-chat"),
			LLMBaseURL:        getEnv("LLM_BASE_URL", "https://api.deepseek.com"),
			LLMApiKey:         getEnv("LLM_API_KEY", ""),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "deepseek"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "deepseek-embed"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Session: SessionConfig{
			Backend:      getEnv("SESSION_BACKEND", "memory"),
			RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
			RedisTTLDays: getEnvAsInt("SESSION_REDIS_TTL_DAYS", 7),
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
