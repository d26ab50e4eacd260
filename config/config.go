package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	Port             string   `env:"PORT" envDefault:"8080"`
	MongoURL         string   `env:"MONGO_URL,required"`
	DBName           string   `env:"DB_NAME" envDefault:"groceryapp"`
	GoogleClientID   string   `env:"GOOGLE_CLIENT_ID"`
	SuperAdminEmails []string `env:"SUPER_ADMIN_EMAILS" envSeparator:","`
	FrontendURL      string   `env:"FRONTEND_URL"`
	CustomDomain     string   `env:"CUSTOM_DOMAIN" envDefault:"https://emmanuelsupermarket.in"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// IsSuperAdmin reports whether email is on the super-admin allow-list.
// Membership is rechecked on every login, so allow-list changes take
// effect the next time the account signs in.
func (c *Config) IsSuperAdmin(email string) bool {
	for _, e := range c.SuperAdminEmails {
		if strings.EqualFold(strings.TrimSpace(e), email) {
			return true
		}
	}
	return false
}

// AllowedOrigins builds the CORS origin allow-list, dropping unset entries.
func (c *Config) AllowedOrigins() []string {
	origins := []string{}
	for _, o := range []string{c.FrontendURL, "http://localhost:3000", c.CustomDomain} {
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
