package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAllowedOrigins are the local frontend dev servers that may always call the API.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:3000",
}

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	CORS   CORSConfig
	App    AppConfig
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

type MongoConfig struct {
	URI     string
	Name    string
	Timeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type AppConfig struct {
	Name        string
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8000"),
			ShutdownTimeout: getEnvAsSeconds("SHUTDOWN_TIMEOUT_SECONDS", 10),
		},
		Mongo: MongoConfig{
			URI:     getEnv("MONGODB_URL", "mongodb://localhost:27017"),
			Name:    getEnv("DATABASE_NAME", "ai_website_generator"),
			Timeout: getEnvAsSeconds("MONGODB_TIMEOUT_SECONDS", 5),
		},
		CORS: CORSConfig{
			AllowedOrigins: MergeOrigins(DefaultAllowedOrigins, os.Getenv("CORS_ORIGINS")),
		},
		App: AppConfig{
			Name:        "ai-website-generator",
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URL is required")
	}

	if c.Mongo.Name == "" {
		return fmt.Errorf("DATABASE_NAME is required")
	}

	for _, origin := range c.CORS.AllowedOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ORIGINS: origin %q must start with http:// or https://", origin)
		}
	}

	return nil
}

// MergeOrigins appends the comma separated extra origins to base, skipping blanks
// and duplicates. base is never modified.
func MergeOrigins(base []string, extra string) []string {
	out := make([]string, 0, len(base)+4)
	seen := make(map[string]struct{}, len(base))

	add := func(origin string) {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "" {
			return
		}
		if _, ok := seen[origin]; ok {
			return
		}
		seen[origin] = struct{}{}
		out = append(out, origin)
	}

	for _, o := range base {
		add(o)
	}
	for _, o := range strings.Split(extra, ",") {
		add(o)
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsSeconds(key string, defaultSeconds int) time.Duration {
	n := getEnvAsInt(key, defaultSeconds)
	if n <= 0 {
		n = defaultSeconds
	}
	return time.Duration(n) * time.Second
}
