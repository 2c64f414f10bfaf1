package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	// OpenAI
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string // empty = SDK default
	OpenAITimeout time.Duration

	// Server
	APIPort string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OpenAITimeout: time.Duration(getEnvInt("OPENAI_TIMEOUT_SECONDS", 60)) * time.Second,

		APIPort: getEnv("API_PORT", "3000"),
	}
}

func (c *Config) Validate(log *zap.Logger) {
	if c.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY is not set, generation calls will fail")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
