// Package config reads process settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	TLSCert     string
	TLSKey      string
	TokenKey    string
	DatabaseURL string
	RateLimit   float64
	RateBurst   int
	Precision   int
	BotToken    string
}

var ErrNoTokenKey = errors.New("TOKEN_KEY environment variable is not set")

// Load reads .env files (if any) and then the environment. Variables that
// are already set win over the file.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	c := Config{
		Addr:        env("ADDR", ":443"),
		TLSCert:     envAllowEmpty("TLS_CERT", "server.crt"),
		TLSKey:      envAllowEmpty("TLS_KEY", "server.key"),
		TokenKey:    os.Getenv("TOKEN_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		BotToken:    os.Getenv("TOKEN_BOT"),
	}
	var err error
	if c.RateLimit, err = envFloat("RATE_LIMIT", 1); err != nil {
		return Config{}, err
	}
	if c.RateBurst, err = envInt("RATE_BURST", 3); err != nil {
		return Config{}, err
	}
	if c.Precision, err = envInt("PRECISION", 6); err != nil {
		return Config{}, err
	}
	if c.Precision < 1 || c.Precision > 17 {
		return Config{}, fmt.Errorf("PRECISION must be between 1 and 17, got %d", c.Precision)
	}
	return c, nil
}

// LoadServer is Load plus the settings only the HTTP server needs.
func LoadServer() (Config, error) {
	c, err := Load()
	if err != nil {
		return c, err
	}
	if c.TokenKey == "" {
		return c, ErrNoTokenKey
	}
	return c, nil
}

// TLS reports whether both certificate and key are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

func (c Config) LogSummary() {
	log.Printf("config: addr=%s tls=%v rate=%g/%d precision=%d", c.Addr, c.TLS(), c.RateLimit, c.RateBurst, c.Precision)
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envAllowEmpty distinguishes unset (default) from explicitly empty.
func envAllowEmpty(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
