package server

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	Env     string
	APIKey  string
	Workers int
}

// Load reads configuration from a .env file (when present), flags and
// environment variables. Environment variables win over flags so
// container deployments can override without changing the command line.
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

	workers := 8
	if raw := strings.TrimSpace(os.Getenv("STRIP_WORKERS")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			workers = n
		}
	}

	return &Config{
		Port:    *port,
		Env:     env,
		APIKey:  strings.TrimSpace(os.Getenv("API_KEY")),
		Workers: workers,
	}, nil
}
