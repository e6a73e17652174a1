package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Port     string

	AuthToken      string
	AuthServiceURL string

	OpenAIAPIKey        string
	OpenAIBaseURL       string
	Model               string
	MaxTokens           int
	Temperature         float32
	LLMTimeoutMS        int
	LLMMaxRetries       int
	MaxTranscriptTokens int
	UseMockLLM          bool

	ExportBackend string
	ExportFile    string
	PostgresDSN   string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = loadDotEnv(".env")
		cfg = FromEnv()
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

// FromEnv reads the configuration without caching or validating it.
func FromEnv() *Config {
	return &Config{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnv("PORT", "8088"),

		AuthToken:      getEnv("AUTH_TOKEN", "MOCK-TOKEN"),
		AuthServiceURL: getEnv("AUTH_SERVICE_URL", ""),

		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:       getEnv("OPENAI_BASE_URL", ""),
		Model:               getEnv("GPT_MODEL", "gpt-3.5-turbo"),
		MaxTokens:           getInt("MAX_TOKENS", 500),
		Temperature:         float32(getFloat("TEMPERATURE", 0.7)),
		LLMTimeoutMS:        getInt("LLM_TIMEOUT_MS", 20000),
		LLMMaxRetries:       getInt("LLM_MAX_RETRIES", 2),
		MaxTranscriptTokens: getInt("MAX_TRANSCRIPT_TOKENS", 1000),
		UseMockLLM:          getBool("USE_MOCK_LLM", false),

		ExportBackend: getEnv("EXPORT_BACKEND", "file"),
		ExportFile:    getEnv("EXPORT_FILE", "data/exports.json"),
		PostgresDSN:   getEnv("POSTGRES_DSN", ""),
	}
}

func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	switch c.ExportBackend {
	case "memory":
	case "file":
		if c.ExportFile == "" {
			return errors.New("EXPORT_FILE is required when EXPORT_BACKEND=file")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when EXPORT_BACKEND=postgres")
		}
	default:
		return errors.New("EXPORT_BACKEND must be one of: memory, file, postgres")
	}
	if !c.UseMockLLM && c.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is required unless USE_MOCK_LLM is set")
	}
	if c.Env != "development" && c.AuthServiceURL == "" {
		return errors.New("AUTH_SERVICE_URL is required outside development")
	}
	if c.MaxTokens <= 0 || c.MaxTranscriptTokens <= 0 {
		return errors.New("MAX_TOKENS and MAX_TRANSCRIPT_TOKENS must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return f
}

func getBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return fallback
}

// loadDotEnv sets KEY=VALUE pairs from path without overriding variables
// that are already present in the environment. A missing file is fine.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
