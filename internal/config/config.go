// Package config loads service configuration from the environment and an optional YAML file.
package config

import (
	"os"
	"strconv"
	"strings"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration of the service.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Admin      AdminConfig      `yaml:"admin"`
	Logging    LoggingConfig    `yaml:"logging"`
	Credential CredentialConfig `yaml:"credential"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port              int      `yaml:"port"`
	AllowOrigins      []string `yaml:"allow_origins"`
	RateLimitPerSec   uint     `yaml:"rate_limit_per_sec"`
	MaxBodyBytes      int64    `yaml:"max_body_bytes"`
	DefaultPageLimit  int      `yaml:"default_page_limit"`
	ApplicationWindow int      `yaml:"application_window_days"`
	// HSTSMaxAge in seconds; 0 leaves Strict-Transport-Security unset.
	HSTSMaxAge        int      `yaml:"hsts_max_age"`
}

// DatabaseConfig holds the parameters for connecting to PostgreSQL.
type DatabaseConfig struct {
	Host          string `yaml:"host"`
	Port          string `yaml:"port"`
	User          string `yaml:"user"`
	Password      string `yaml:"password"`
	Name          string `yaml:"name"`
	ConnectionStr string `yaml:"connection_str"`
	UseConnStr    bool   `yaml:"use_connection_str"`
	Debug         bool   `yaml:"debug"`
}

// AdminConfig seeds the first admin account when both fields are set.
type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	AuthLog     bool   `yaml:"auth_log"`
	AuthLogFile string `yaml:"auth_log_file"`
}

// CredentialConfig controls password hashing.
type CredentialConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

// LoadConfig builds a Config from environment defaults and overlays the YAML file at path, if any.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnvInt("PORT", 8080),
			AllowOrigins:      splitList(getEnv("ALLOW_ORIGIN", "")),
			RateLimitPerSec:   uint(getEnvInt("RATE_LIMIT_REQUESTS_PER_SECOND", 5)),
			MaxBodyBytes:      int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
			DefaultPageLimit:  getEnvInt("DEFAULT_PAGE_LIMIT", 20),
			ApplicationWindow: getEnvInt("APPLICATION_WINDOW_DAYS", 30),
			HSTSMaxAge:        getEnvInt("HSTS_MAX_AGE", 0),
		},
		Database: DatabaseConfig{
			Host:          os.Getenv("DB_HOST"),
			Port:          os.Getenv("DB_PORT"),
			User:          os.Getenv("DB_USERNAME"),
			Password:      os.Getenv("DB_PASSWORD"),
			Name:          os.Getenv("DB_DATABASE"),
			ConnectionStr: os.Getenv("DB_CONNECTION_STR"),
			UseConnStr:    getEnvBool("USE_CONNECTION_STR", false),
			Debug:         getEnvBool("DB_DEBUG", false),
		},
		Admin: AdminConfig{
			Email:    os.Getenv("ADMIN_EMAIL"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		Logging: LoggingConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvBool("LOG_DEVELOPMENT", false),
			AuthLog:     getEnvBool("LOGGING", false),
			AuthLogFile: getEnv("AUTH_LOG_FILE", "log/auth.log"),
		},
		Credential: CredentialConfig{
			BcryptCost: getEnvInt("BCRYPT_COST", 10),
		},
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Server.RateLimitPerSec == 0 {
		cfg.Server.RateLimitPerSec = 5
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
