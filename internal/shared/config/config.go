package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port          string
	Env           string
	DatabaseURL   string
	DBDriver      string // postgres (pgx), pq (lib/pq) or sqlite
	DBAutoMigrate bool
	LogLevel      string

	JWTSecret string
	Timezone  string

	// LLM
	LLMProvider  string
	LLMModel     string
	GeminiAPIKey string
	OpenAIAPIKey string
	GroqAPIKey   string

	// AI quota
	RedisURL     string
	AIDailyQuota int

	// Daily digest cron expression (with seconds), empty disables it
	DigestSchedule string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:           os.Getenv("PORT"),
		Env:            os.Getenv("ENV"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBDriver:       os.Getenv("DB_DRIVER"),
		DBAutoMigrate:  parseBool(os.Getenv("DB_AUTO_MIGRATE")),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Timezone:       os.Getenv("TIMEZONE"),
		LLMProvider:    os.Getenv("LLM_PROVIDER"),
		LLMModel:       os.Getenv("LLM_MODEL"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		GroqAPIKey:     os.Getenv("GROQ_API_KEY"),
		RedisURL:       os.Getenv("REDIS_URL"),
		AIDailyQuota:   parseInt(os.Getenv("AI_DAILY_QUOTA")),
		DigestSchedule: os.Getenv("DIGEST_SCHEDULE"),
	}

	applyDefaults(cfg, !isSet("DIGEST_SCHEDULE"))
	return cfg
}

// applyDefaults fills empty fields. An explicitly empty DIGEST_SCHEDULE keeps the digest off.
func applyDefaults(cfg *Config, digestUnset bool) {
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = "postgres"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = "gemini"
	}
	if cfg.AIDailyQuota == 0 {
		cfg.AIDailyQuota = 100
	}
	if digestUnset {
		cfg.DigestSchedule = "0 0 21 * * *"
	}
}

// Location returns the configured timezone, falling back to the server's local zone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Warn().Str("timezone", c.Timezone).Err(err).Msg("⚠️ Invalid TIMEZONE, using local time")
		return time.Local
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func isSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

func parseBool(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}

func parseInt(v string) int {
	n, _ := strconv.Atoi(v)
	return n
}
