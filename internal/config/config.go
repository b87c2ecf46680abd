package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Database  DatabaseConfig  `yaml:"database"`
	Digest    DigestConfig    `yaml:"digest"`
	HTTP      HTTPConfig      `yaml:"http"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// TelegramConfig contains bot credentials and operator channels
type TelegramConfig struct {
	Token        string `yaml:"token"`
	AdminChatID  int64  `yaml:"admin_chat_id"`
	ReviewChatID int64  `yaml:"review_chat_id"`
	Debug        bool   `yaml:"debug"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// DigestConfig contains SendGrid settings for the nightly operator email
type DigestConfig struct {
	Enabled  bool   `yaml:"enabled"`
	APIKey   string `yaml:"api_key"`
	From     string `yaml:"from"`
	FromName string `yaml:"from_name"`
	To       string `yaml:"to"`
	ToName   string `yaml:"to_name"`
}

// HTTPConfig contains settings for the health/stats sidecar
type HTTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// SessionConfig contains conversation lifecycle settings
type SessionConfig struct {
	MaxIdleMinutes int `yaml:"max_idle_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron specs (with seconds precision)
type SchedulerConfig struct {
	ReapSessions string `yaml:"reap_sessions"`
	SendDigest   string `yaml:"send_digest"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Telegram
	if val := os.Getenv("TELEGRAM_TOKEN"); val != "" {
		c.Telegram.Token = val
	}
	if val := os.Getenv("TELEGRAM_ADMIN_CHAT_ID"); val != "" {
		fmt.Sscanf(val, "%d", &c.Telegram.AdminChatID)
	}
	if val := os.Getenv("TELEGRAM_REVIEW_CHAT_ID"); val != "" {
		fmt.Sscanf(val, "%d", &c.Telegram.ReviewChatID)
	}

	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Digest
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Digest.APIKey = val
	}

	// HTTP
	if val := os.Getenv("HTTP_HOST"); val != "" {
		c.HTTP.Host = val
	}
	if val := os.Getenv("HTTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.HTTP.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Telegram validation
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required")
	}
	if c.Telegram.AdminChatID == 0 {
		return fmt.Errorf("admin chat id is required")
	}
	if c.Telegram.ReviewChatID == 0 {
		c.Telegram.ReviewChatID = c.Telegram.AdminChatID
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// Digest validation
	if c.Digest.Enabled {
		if c.Digest.APIKey == "" {
			return fmt.Errorf("digest api key is required when digest is enabled")
		}
		if c.Digest.From == "" || c.Digest.To == "" {
			return fmt.Errorf("digest from and to addresses are required when digest is enabled")
		}
	}

	// HTTP defaults
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port: %d", c.HTTP.Port)
	}

	// Session defaults
	if c.Session.MaxIdleMinutes <= 0 {
		c.Session.MaxIdleMinutes = 60
	}

	// Scheduler defaults
	if c.Scheduler.ReapSessions == "" {
		c.Scheduler.ReapSessions = "0 */10 * * * *" // every 10 minutes
	}
	if c.Scheduler.SendDigest == "" {
		c.Scheduler.SendDigest = "0 0 7 * * *" // 7 AM UTC, early morning in Chile
	}

	return nil
}

// GetDatabaseConnectionString returns the PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Database, sslMode)
}
