// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Storage drivers for ledger and reply log snapshots.
const (
	StorageDriverFile     = "file"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Campaign   CampaignConfig   `mapstructure:"campaign"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	WhatsApp   WhatsAppConfig   `mapstructure:"whatsapp"`
	Sender     SenderConfig     `mapstructure:"sender"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type CampaignConfig struct {
	SettingsPath    string `mapstructure:"settings_path"`
	ContactsPath    string `mapstructure:"contacts_path"`
	CaptionTemplate string `mapstructure:"caption_template"`
}

type StorageConfig struct {
	Driver         string `mapstructure:"driver"`
	Dir            string `mapstructure:"dir"`
	StatusName     string `mapstructure:"status_name"`
	RepliesName    string `mapstructure:"replies_name"`
	KeyPrefix      string `mapstructure:"key_prefix"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type WhatsAppConfig struct {
	SessionDialect string `mapstructure:"session_dialect"`
	SessionDSN     string `mapstructure:"session_dsn"`
	LogLevel       string `mapstructure:"log_level"`
}

type SenderConfig struct {
	// Timeout bounds a single send in seconds. Zero waits indefinitely.
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	RequestTimeout int      `mapstructure:"request_timeout"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoadConfig reads the YAML config file. Environment variables prefixed with
// BROADCAST_ override file values, e.g. BROADCAST_STORAGE_DRIVER.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("broadcast")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("campaign.settings_path", "settings.json")
	v.SetDefault("campaign.contacts_path", "contacts.json")
	v.SetDefault("campaign.caption_template", DefaultCaptionTemplate)
	v.SetDefault("storage.driver", StorageDriverFile)
	v.SetDefault("storage.dir", ".")
	v.SetDefault("storage.status_name", "message-status")
	v.SetDefault("storage.replies_name", "replies")
	v.SetDefault("storage.key_prefix", "broadcast")
	v.SetDefault("storage.migrations_path", "./migrations")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.db", 0)
	v.SetDefault("whatsapp.session_dialect", "sqlite")
	v.SetDefault("whatsapp.session_dsn", "file:whatsapp-session.db?_pragma=foreign_keys(1)")
	v.SetDefault("whatsapp.log_level", "INFO")
	v.SetDefault("sender.timeout", 0)
	v.SetDefault("sender.circuit_breaker.max_requests", 3)
	v.SetDefault("sender.circuit_breaker.interval", 60)
	v.SetDefault("sender.circuit_breaker.timeout", 60)
	v.SetDefault("sender.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("sender.circuit_breaker.consecutive_fails", 5)
	v.SetDefault("middleware.rate_limit", 100)
	v.SetDefault("middleware.rate_limit_burst", 1000)
	v.SetDefault("middleware.request_timeout", 30)
	v.SetDefault("middleware.enable_cors", true)
	v.SetDefault("middleware.allowed_origins", []string{"*"})
}

// Validate checks values viper cannot type-check on its own.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverFile, StorageDriverRedis, StorageDriverPostgres:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}
	if c.Storage.StatusName == "" || c.Storage.RepliesName == "" {
		return fmt.Errorf("%w: storage names must not be empty", ErrInvalidConfig)
	}
	if c.Storage.StatusName == c.Storage.RepliesName {
		return fmt.Errorf("%w: status and replies storage names must differ", ErrInvalidConfig)
	}
	if c.Sender.Timeout < 0 {
		return fmt.Errorf("%w: sender.timeout must not be negative", ErrInvalidConfig)
	}
	return nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// GetURL returns the PostgreSQL URL form used by migrations.
func (d *DatabaseConfig) GetURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// GetAddr returns the Redis address.
func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
