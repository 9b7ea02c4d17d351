package app

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"backoffice-api/internal/service"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress          string
	SeedFile               string
	ClientDeletePolicy     service.DeletePolicy
	CorsAllowOrigins       []string
	ContractExpirySchedule string
	ShutdownTimeout        time.Duration
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

// LoadConfig reads the process environment, after loading .env when present.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return configFromEnv()
}

func configFromEnv() (*Config, error) {
	policy, err := service.ParseDeletePolicy(env("CLIENT_DELETE_POLICY", string(service.DeleteReject)))
	if err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(env("SHUTDOWN_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	var origins []string
	for _, o := range strings.Split(env("CORS_ALLOW_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		ServerAddress:          env("SERVER_ADDRESS", ":8080"),
		SeedFile:               env("SEED_FILE", ""),
		ClientDeletePolicy:     policy,
		CorsAllowOrigins:       origins,
		ContractExpirySchedule: env("CONTRACT_EXPIRY_SCHEDULE", ""),
		ShutdownTimeout:        timeout,
	}, nil
}
