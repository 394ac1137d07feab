package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"*"`
	}

	Google struct {
		ClientID string `env:"GOOGLE_CLIENT_ID"`
		JWKSURL  string `env:"GOOGLE_JWKS_URL" envDefault:"https://www.googleapis.com/oauth2/v3/certs"`
	}

	JWT struct {
		Secret   string        `env:"JWT_SECRET"`
		Issuer   string        `env:"JWT_ISSUER" envDefault:"current-api"`
		Audience string        `env:"JWT_AUDIENCE" envDefault:"current-web"`
		TTL      time.Duration `env:"JWT_TTL" envDefault:"168h"`
	}

	Users struct {
		Table string `env:"USERS_TABLE" envDefault:"users"`

		// Comma separated, matched case-insensitively.
		AdminEmails []string `env:"ADMIN_EMAIL_ALLOWLIST" envSeparator:","`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Tracks struct {
		Table        string        `env:"TRACKS_TABLE" envDefault:"tracks"`
		CacheTTL     time.Duration `env:"TRACKS_CACHE_TTL" envDefault:"30s"`
		AudioBaseURL string        `env:"AUDIO_BASE_URL"`
	}

	Storage struct {
		Endpoint     string        `env:"S3_ENDPOINT" envDefault:"s3.amazonaws.com"`
		Region       string        `env:"S3_REGION" envDefault:"us-east-1"`
		AccessKey    string        `env:"S3_ACCESS_KEY"`
		SecretKey    string        `env:"S3_SECRET_KEY"`
		UseSSL       bool          `env:"S3_USE_SSL" envDefault:"true"`
		IngestBucket string        `env:"INGEST_BUCKET"`
		AudioBucket  string        `env:"AUDIO_BUCKET"`
		PresignTTL   time.Duration `env:"UPLOAD_URL_TTL" envDefault:"15m"`
	}
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is fine; production sets variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Users.AdminEmails = NormalizeEmails(cfg.Users.AdminEmails)

	return cfg, nil
}

// RedisAddr returns host:port for the Redis client.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// Missing lists the settings the auth endpoints cannot work without.
func (c *Config) Missing() []string {
	var missing []string
	if c.Google.ClientID == "" {
		missing = append(missing, "GOOGLE_CLIENT_ID")
	}
	if c.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.Users.Table == "" {
		missing = append(missing, "USERS_TABLE")
	}
	return missing
}

// NormalizeEmails trims, lowercases and drops empty entries.
func NormalizeEmails(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
