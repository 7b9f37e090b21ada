// Package config reads service settings from the environment, after
// loading a .env file when one is present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DatabaseURL string
	TokenKey    string
	TLSCert     string
	TLSKey      string
	LogLevel    string
	LogFormat   string
}

// TLS reports whether both certificate files are configured.
func (c Config) TLS() bool { return c.TLSCert != "" && c.TLSKey != "" }

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Load reads files (".env" when none are given) and then the environment.
// Variables already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s: %w", f, err)
		}
	}

	c := Config{
		Addr:        env("ADDR", ":8080"),
		DatabaseURL: env("DATABASE_URL", "user=postgres dbname=postgres password=password sslmode=disable"),
		TokenKey:    env("TOKEN_KEY", ""),
		TLSCert:     env("TLS_CERT", ""),
		TLSKey:      env("TLS_KEY", ""),
		LogLevel:    env("LOG_LEVEL", "info"),
		LogFormat:   env("LOG_FORMAT", "text"),
	}
	if c.TokenKey == "" {
		return Config{}, errors.New("config: TOKEN_KEY is not set")
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return Config{}, errors.New("config: TLS_CERT and TLS_KEY must be set together")
	}
	return c, nil
}
