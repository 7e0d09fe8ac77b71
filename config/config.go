package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	ServerPort int
	Database   DatabaseConfig
	Auth       AuthConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	UseSSL   bool
}

// AuthConfig carries the credential policy knobs. The hasher cost and
// the password policy are validated where they are consumed, so a bad
// value fails at startup.
type AuthConfig struct {
	JWTSecret             string
	BcryptCost            int
	PasswordMinLength     int
	PasswordRequireUpper  bool
	PasswordRequireLower  bool
	PasswordRequireDigit  bool
	PasswordRequireSymbol bool
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432),
		User:     getEnv("DB_USER", "notekeep"),
		Password: getEnv("DB_PASSWORD", "password"),
		DBName:   getEnv("DB_NAME", "notekeep_db"),
		UseSSL:   getEnvBool("DB_USE_SSL", false),
	}

	authConfig := AuthConfig{
		JWTSecret:             getEnv("JWT_SECRET", ""),
		BcryptCost:            getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		PasswordMinLength:     getEnvInt("PASSWORD_MIN_LENGTH", 8),
		PasswordRequireUpper:  getEnvBool("PASSWORD_REQUIRE_UPPER", true),
		PasswordRequireLower:  getEnvBool("PASSWORD_REQUIRE_LOWER", true),
		PasswordRequireDigit:  getEnvBool("PASSWORD_REQUIRE_DIGIT", true),
		PasswordRequireSymbol: getEnvBool("PASSWORD_REQUIRE_SYMBOL", true),
	}

	return Config{
		ServerPort: getEnvInt("SERVER_PORT", 8080),
		Database:   dbConfig,
		Auth:       authConfig,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
