package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	GinMode         string
	AllowedHosts    []string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	LogFormat       string
}

// LoadDotEnv reads variables from the given files into the process
// environment. Variables that are already set win over the file.
func LoadDotEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// Load builds a Config from the environment, falling back to defaults for
// unset variables.
func Load() (Config, error) {
	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", gin.DebugMode),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("GIN_MODE: unknown mode %q", cfg.GinMode)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("LOG_FORMAT: unknown format %q", cfg.LogFormat)
	}

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	cfg.AllowedHosts = splitList(os.Getenv("ALLOWED_HOSTS"))
	cfg.CORSOrigins = splitList(os.Getenv("CORS_ORIGINS"))

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// splitList parses a comma separated list, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
