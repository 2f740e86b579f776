package bootstrap

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr string
	LogLevel   string

	VisionAPIKey   string
	VisionEndpoint string
	VisionTimeout  time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ResultTTL     time.Duration

	RulesFile       string
	MaxUploadBytes  int64
	DefaultLanguage string
	DefaultMarket   string
}

// LoadConfig reads the environment, picking up a .env file in the working
// directory when one exists. An empty REDIS_ADDR keeps session state in memory.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		VisionAPIKey:   getEnv("VISION_API_KEY", ""),
		VisionEndpoint: getEnv("VISION_ENDPOINT", ""),
		VisionTimeout:  getEnvDuration("VISION_TIMEOUT", 30*time.Second),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		ResultTTL:     getEnvDuration("RESULT_TTL", time.Hour),

		RulesFile:       getEnv("RULES_FILE", ""),
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		DefaultMarket:   getEnv("DEFAULT_MARKET", "US"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
