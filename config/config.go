package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Webhook    WebhookConfig    `mapstructure:"webhook"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Dispatcher DispatcherConfig `mapstructure:"dispatcher"`
	Processor  ProcessorConfig  `mapstructure:"processor"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// WebhookConfig covers the signing secret shared between the simulated
// providers and the inbound verifier, and the default consumer base URL.
type WebhookConfig struct {
	Secret  string `mapstructure:"secret"`
	BaseURL string `mapstructure:"base_url"`
}

type SchedulerConfig struct {
	DefaultDelayMin time.Duration `mapstructure:"default_delay_min"`
	DefaultDelayMax time.Duration `mapstructure:"default_delay_max"`
	QueueSize       int           `mapstructure:"queue_size"`
	Workers         int           `mapstructure:"workers"`
	Retention       time.Duration `mapstructure:"retention"`
}

type DispatcherConfig struct {
	MaxRetries       int           `mapstructure:"max_retries"`
	RetryDelay       time.Duration `mapstructure:"retry_delay"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
	SimulateFailures bool          `mapstructure:"simulate_failures"`
	FailureRate      float64       `mapstructure:"failure_rate"`
}

type ProcessorConfig struct {
	IdempotencyTTL time.Duration `mapstructure:"idempotency_ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: KWS_ (KYC Webhook
// Simulator). Nested keys use underscore: KWS_DATABASE_HOST,
// KWS_WEBHOOK_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "kyc_simulator")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("webhook.secret", "webhook-secret-change-in-production")
	v.SetDefault("webhook.base_url", "http://localhost:8080/webhooks")
	v.SetDefault("scheduler.default_delay_min", "5s")
	v.SetDefault("scheduler.default_delay_max", "30s")
	v.SetDefault("scheduler.queue_size", 256)
	v.SetDefault("scheduler.workers", 4)
	v.SetDefault("scheduler.retention", "1h")
	v.SetDefault("dispatcher.max_retries", 3)
	v.SetDefault("dispatcher.retry_delay", "5s")
	v.SetDefault("dispatcher.request_timeout", "30s")
	v.SetDefault("dispatcher.simulate_failures", false)
	v.SetDefault("dispatcher.failure_rate", 0.1)
	v.SetDefault("processor.idempotency_ttl", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: KWS_DATABASE_HOST -> database.host
	v.SetEnvPrefix("KWS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations that cannot run.
func (c *Config) Validate() error {
	if c.Webhook.Secret == "" {
		return fmt.Errorf("webhook.secret must not be empty")
	}
	if c.Scheduler.DefaultDelayMin < 0 || c.Scheduler.DefaultDelayMax < c.Scheduler.DefaultDelayMin {
		return fmt.Errorf("scheduler delay range is invalid: min=%s max=%s",
			c.Scheduler.DefaultDelayMin, c.Scheduler.DefaultDelayMax)
	}
	if c.Dispatcher.MaxRetries < 1 {
		return fmt.Errorf("dispatcher.max_retries must be at least 1")
	}
	if c.Dispatcher.FailureRate < 0 || c.Dispatcher.FailureRate > 1 {
		return fmt.Errorf("dispatcher.failure_rate must be within [0, 1]")
	}
	return nil
}
