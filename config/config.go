package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port            string
	DatabaseURL     string
	AccessTokenKey  string
	StripeSecretKey string
}

// Load reads .env if present and builds the process configuration.
// The token secret is the only hard requirement; without it no token can
// ever be issued or verified.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		Port:            os.Getenv("PORT"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		AccessTokenKey:  os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.AccessTokenKey == "" {
		return cfg, errors.New("ACCESS_TOKEN_SECRET is not set")
	}
	return cfg, nil
}
