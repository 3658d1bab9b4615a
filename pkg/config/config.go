package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Events   EventsConfig   `mapstructure:"events"`
	Guard    GuardConfig    `mapstructure:"guard"`
}

type ServerConfig struct {
	AdminPort       int           `mapstructure:"admin_port"`
	ProxyPort       int           `mapstructure:"proxy_port"`
	MetricsPort     int           `mapstructure:"metrics_port"`
	SecretKey       string        `mapstructure:"secret_key"`
	UpstreamURL     string        `mapstructure:"upstream_url"`
	UpstreamTimeout time.Duration `mapstructure:"upstream_timeout"`
}

type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type EventsConfig struct {
	BufferSize int            `mapstructure:"buffer_size"`
	Workers    int            `mapstructure:"workers"`
	LogEnabled bool           `mapstructure:"log_enabled"`
	Kafka      map[string]any `mapstructure:"kafka"`
	Postgres   PostgresSink   `mapstructure:"postgres"`
}

type PostgresSink struct {
	Enabled bool `mapstructure:"enabled"`
}

type BreakerConfig struct {
	MaxFailures uint32        `mapstructure:"max_failures"`
	OpenTimeout time.Duration `mapstructure:"open_timeout"`
}

type RouteConfig struct {
	Method   string `mapstructure:"method"`
	Path     string `mapstructure:"path"`
	Category string `mapstructure:"category"`
}

type PolicyConfig struct {
	MaxAttemptsPerAddressHour  int  `mapstructure:"max_attempts_per_address_per_hour"`
	MaxAttemptsPerIdentityHour int  `mapstructure:"max_attempts_per_identity_per_hour"`
	BaseLockoutMinutes         int  `mapstructure:"base_lockout_minutes"`
	ProgressiveEnabled         bool `mapstructure:"progressive_enabled"`
}

type GuardConfig struct {
	FailMode              string                  `mapstructure:"fail_mode"`
	StoreTimeout          time.Duration           `mapstructure:"store_timeout"`
	Window                time.Duration           `mapstructure:"window"`
	ViolationTTL          time.Duration           `mapstructure:"violation_ttl"`
	DenylistThreshold     int                     `mapstructure:"denylist_threshold"`
	DenylistMaxDays       int                     `mapstructure:"denylist_max_days"`
	DenylistEventInterval time.Duration           `mapstructure:"denylist_event_interval"`
	TrustForwardedHeaders bool                    `mapstructure:"trust_forwarded_headers"`
	MaxIdentityBodyBytes  int                     `mapstructure:"max_identity_body_bytes"`
	Breaker               BreakerConfig           `mapstructure:"breaker"`
	Routes                []RouteConfig           `mapstructure:"routes"`
	Policies              map[string]PolicyConfig `mapstructure:"policies"`
}

const (
	FailModeOpen   = "open"
	FailModeClosed = "closed"
)

var globalConfig Config

func Load(configPath string) error {
	viper.SetDefault("guard.trust_forwarded_headers", true)
	viper.SetDefault("events.log_enabled", true)

	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("⚠️ Warning: Could not load main config file: %v", err)
	}

	setDefaultValues(&globalConfig)

	return globalConfig.Validate()
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues(cfg *Config) {
	if cfg.Server.ProxyPort == 0 {
		cfg.Server.ProxyPort = 8081
	}
	if cfg.Server.AdminPort == 0 {
		cfg.Server.AdminPort = 8080
	}
	if cfg.Server.UpstreamTimeout == 0 {
		cfg.Server.UpstreamTimeout = 10 * time.Second
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Events.BufferSize <= 0 {
		cfg.Events.BufferSize = 1024
	}
	if cfg.Events.Workers <= 0 {
		cfg.Events.Workers = 2
	}

	g := &cfg.Guard
	if g.FailMode == "" {
		g.FailMode = FailModeOpen
	}
	g.FailMode = strings.ToLower(g.FailMode)
	if g.StoreTimeout <= 0 {
		g.StoreTimeout = 150 * time.Millisecond
	}
	if g.Window <= 0 {
		g.Window = time.Hour
	}
	if g.ViolationTTL <= 0 {
		g.ViolationTTL = 24 * time.Hour
	}
	if g.DenylistThreshold <= 0 {
		g.DenylistThreshold = 5
	}
	if g.DenylistMaxDays <= 0 {
		g.DenylistMaxDays = 7
	}
	if g.DenylistEventInterval <= 0 {
		g.DenylistEventInterval = time.Minute
	}
	if g.MaxIdentityBodyBytes <= 0 {
		g.MaxIdentityBodyBytes = 4 * 1024 * 1024
	}
	if g.Breaker.MaxFailures == 0 {
		g.Breaker.MaxFailures = 5
	}
	if g.Breaker.OpenTimeout <= 0 {
		g.Breaker.OpenTimeout = 10 * time.Second
	}
}

func (c *Config) Validate() error {
	switch c.Guard.FailMode {
	case FailModeOpen, FailModeClosed:
	default:
		return fmt.Errorf("invalid guard.fail_mode %q: expected %q or %q", c.Guard.FailMode, FailModeOpen, FailModeClosed)
	}
	if c.Guard.DenylistMaxDays > 7 {
		return fmt.Errorf("guard.denylist_max_days must not exceed 7, got %d", c.Guard.DenylistMaxDays)
	}
	for _, r := range c.Guard.Routes {
		if r.Path == "" || r.Category == "" {
			return fmt.Errorf("guard route requires path and category: %+v", r)
		}
	}
	return nil
}

// Defaults returns a configuration with every default applied, for callers
// that run without a config file.
func Defaults() Config {
	var cfg Config
	cfg.Guard.TrustForwardedHeaders = true
	cfg.Events.LogEnabled = true
	setDefaultValues(&cfg)
	return cfg
}

func GetConfig() *Config {
	return &globalConfig
}
