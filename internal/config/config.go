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
	Search   SearchConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection     string
	AACTConnection string // read-only mirror of the trial registry
}

type SearchConfig struct {
	FanOutTimeoutSeconds  int
	SearchLogTopic        string
	PubMedAPIKey          string
	SemanticScholarAPIKey string
	OpenAlexMailto        string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection:     getEnv("DB_CONNECTION_STRING", ""),
			AACTConnection: getEnv("AACT_DB_CONNECTION_STRING", ""),
		},
		Search: SearchConfig{
			FanOutTimeoutSeconds:  getEnvAsInt("SEARCH_FANOUT_TIMEOUT_SECONDS", 10),
			SearchLogTopic:        getEnv("SEARCH_LOG_TOPIC_NAME", "SEARCH_LOG"),
			PubMedAPIKey:          getEnv("PUBMED_API_KEY", ""),
			SemanticScholarAPIKey: getEnv("SEMANTIC_SCHOLAR_API_KEY", ""),
			OpenAlexMailto:        getEnv("OPENALEX_MAILTO", ""),
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
