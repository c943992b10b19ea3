// Package config loads the server configuration from environment
// variables. A .env file is honored when present (loaded by the caller via
// godotenv before Load runs), so local development and containerized
// deployments share one surface.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultCORSOrigins are used when CORS_ORIGINS is unset or empty.
var DefaultCORSOrigins = []string{
	"http://localhost:5173",
	"https://safasfly.dev",
	"https://www.safasfly.dev",
}

// Config is the full environment surface of the server.
type Config struct {
	Port        int      `env:"PORT" envDefault:"3002"`
	DBPath      string   `env:"DB_PATH"`
	CORSOrigins []string `env:"CORS_ORIGINS"`

	// Optional content bundle file (.json/.yaml). When set, the file is
	// imported at startup and re-imported whenever it changes on disk.
	ContentFile string `env:"CONTENT_FILE"`

	// Session TTL in days, clamped to a minimum of 1.
	SessionTTLDays int `env:"ADMIN_SESSION_TTL_DAYS" envDefault:"30"`

	// Seed admin credentials. The admin row is only created/rotated when
	// both values are present.
	SeedAdminEmail    string `env:"SEED_ADMIN_EMAIL"`
	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	ContactEmail string `env:"CONTACT_EMAIL" envDefault:"contact@safasfly.dev"`
}

// Load parses the environment into a Config and normalizes it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	if c.Port <= 0 {
		c.Port = 3002
	}
	if strings.TrimSpace(c.DBPath) == "" {
		c.DBPath = "./data/portfolio.db"
	}

	origins := c.CORSOrigins[:0]
	for _, o := range c.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = DefaultCORSOrigins
	}
	c.CORSOrigins = origins

	if c.SessionTTLDays < 1 {
		c.SessionTTLDays = 1
	}
	if c.SMTPPort <= 0 {
		c.SMTPPort = 587
	}

	c.SeedAdminEmail = strings.ToLower(strings.TrimSpace(c.SeedAdminEmail))
}

// SMTPConfigured reports whether outbound mail can be attempted.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}
