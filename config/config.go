package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "5000"
	DefaultDBHost         = "cluster0.uqxsrr3.mongodb.net"
	DefaultDBName         = "jobbox"
	DefaultRequestTimeout = 10 * time.Second
)

// Config holds everything the process reads from its environment.
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	RequestTimeout time.Duration
	CORSOrigins    []string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN: could not read .env: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:           getenv("PORT", DefaultPort),
		DBName:         getenv("DB_NAME", DefaultDBName),
		RequestTimeout: DefaultRequestTimeout,
		CORSOrigins:    splitList(getenv("CORS_ORIGINS", "*")),
	}

	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", raw, err)
		}
		cfg.RequestTimeout = d
	}

	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		cfg.MongoURI = uri
		return cfg, nil
	}

	// Without credentials MongoURI stays empty and the store runs offline.
	user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASS")
	if user == "" || pass == "" {
		log.Printf("WARN: DB_USER and DB_PASS are not set (nor MONGODB_URI); database routes will fail")
		return cfg, nil
	}
	cfg.MongoURI = atlasURI(user, pass, getenv("DB_HOST", DefaultDBHost))
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func atlasURI(user, pass, host string) string {
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
