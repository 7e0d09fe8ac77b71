package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 8, cfg.Auth.PasswordMinLength)
	assert.True(t, cfg.Auth.PasswordRequireUpper)
	assert.True(t, cfg.Auth.PasswordRequireLower)
	assert.True(t, cfg.Auth.PasswordRequireDigit)
	assert.True(t, cfg.Auth.PasswordRequireSymbol)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_USE_SSL", "true")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("PASSWORD_MIN_LENGTH", "10")
	t.Setenv("PASSWORD_REQUIRE_SYMBOL", "false")
	t.Setenv("JWT_SECRET", "sekret")

	cfg := LoadConfig()

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.True(t, cfg.Database.UseSSL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 10, cfg.Auth.PasswordMinLength)
	assert.False(t, cfg.Auth.PasswordRequireSymbol)
	assert.Equal(t, "sekret", cfg.Auth.JWTSecret)
}

func TestGetEnvBoolIgnoresGarbage(t *testing.T) {
	t.Setenv("PASSWORD_REQUIRE_UPPER", "maybe")

	cfg := LoadConfig()
	assert.True(t, cfg.Auth.PasswordRequireUpper)
}
