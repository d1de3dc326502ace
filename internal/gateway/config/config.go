package config

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	Gemini      GeminiConfig
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Load reads configuration from flags, the environment and an optional
// .env file. A missing GEMINI_API_KEY is a fatal startup condition: the
// model adapter cannot be constructed without it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	gemini, err := loadGeminiConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        *port,
		Env:         env,
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Gemini:      gemini,
	}, nil
}

func loadGeminiConfig() (GeminiConfig, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return GeminiConfig{}, errors.New("config: GEMINI_API_KEY is required")
	}
	return GeminiConfig{
		APIKey:  apiKey,
		Model:   strings.TrimSpace(os.Getenv("GEMINI_MODEL")),
		Timeout: resolveGeminiTimeout(),
	}, nil
}

func resolveGeminiTimeout() time.Duration {
	raw := strings.TrimSpace(os.Getenv("GEMINI_TIMEOUT_SECONDS"))
	if raw == "" {
		return 30 * time.Second
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(secs) * time.Second
}
