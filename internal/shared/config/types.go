package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// ShutdownTimeoutSeconds bounds graceful shutdown of in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s *ServerConfig) ShutdownTimeout() time.Duration {
	if s.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// DatabaseConfig selects one of the supported gorm dialects.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"` // mysql, postgres or sqlite
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	// AutoMigrate uses gorm AutoMigrate instead of goose scripts.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// GetDSN renders the connection string for the configured driver.
// For sqlite Database is the file path (or ":memory:").
func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case "postgres":
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	case "sqlite":
		return d.Database
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	Issuer           string `mapstructure:"issuer"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type DraftConfig struct {
	Secret   string `mapstructure:"secret"`
	ExpHours int    `mapstructure:"exp_hours"`
}

type AuthConfig struct {
	JWT   JWTConfig   `mapstructure:"jwt"`
	Draft DraftConfig `mapstructure:"draft"`
}

// StorageConfig configures the S3-compatible report store.
type StorageConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UsePathStyle    bool   `mapstructure:"use_path_style"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
}

func (s *StorageConfig) HasStaticCredentials() bool {
	return s.AccessKeyID != "" && s.SecretAccessKey != ""
}

type NotificationConfig struct {
	WebhookURL     string `mapstructure:"webhook_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RateLimitConfig applies to public request submission.
type RateLimitConfig struct {
	Requests      int `mapstructure:"requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}
