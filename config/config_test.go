package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "groceryapp", cfg.DBName)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Empty(t, cfg.SuperAdminEmails)
}

func TestNewConfig_MongoURLRequired(t *testing.T) {
	t.Setenv("MONGO_URL", "placeholder") // registers restore
	os.Unsetenv("MONGO_URL")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "grocerytest")
	t.Setenv("SUPER_ADMIN_EMAILS", "owner@example.com,backup@example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "grocerytest", cfg.DBName)
	assert.Equal(t, []string{"owner@example.com", "backup@example.com"}, cfg.SuperAdminEmails)
}

func TestIsSuperAdmin(t *testing.T) {
	cfg := &Config{SuperAdminEmails: []string{" Owner@Example.com ", "backup@example.com"}}

	assert.True(t, cfg.IsSuperAdmin("owner@example.com"))
	assert.True(t, cfg.IsSuperAdmin("BACKUP@EXAMPLE.COM"))
	assert.False(t, cfg.IsSuperAdmin("stranger@example.com"))
	assert.False(t, (&Config{}).IsSuperAdmin("owner@example.com"))
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{FrontendURL: "https://shop.example.com", CustomDomain: "https://emmanuelsupermarket.in"}
	assert.Equal(t, []string{
		"https://shop.example.com",
		"http://localhost:3000",
		"https://emmanuelsupermarket.in",
	}, cfg.AllowedOrigins())

	// unset entries are dropped
	assert.Equal(t, []string{"http://localhost:3000"}, (&Config{}).AllowedOrigins())
}
