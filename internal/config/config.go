package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Routing provider kinds.
const (
	ProviderMapbox    = "mapbox"
	ProviderHaversine = "haversine"
	ProviderNone      = "none"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Auth     AuthConfig
	Routing  RoutingConfig
	Mapbox   MapboxConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	RouteCacheEnabled bool
	RouteCacheTTL     time.Duration
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret string
	UserClaim string
}

type RoutingConfig struct {
	Provider         string
	Timeout          time.Duration
	RateLimitRPS     float64
	RateLimitBurst   int
	RetryAttempts    int
	RetryBackoff     time.Duration
	EstimateSpeedMps float64
}

type MapboxConfig struct {
	AccessToken     string
	BaseURL         string
	Profile         string
	MaxMatrixPoints int
	RequestTimeout  int // seconds
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env is optional: containers get their settings from the environment
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        viper.GetString("API_HOST"),
			Port:        viper.GetInt("API_PORT"),
			Env:         viper.GetString("API_ENV"),
			CORSOrigins: viper.GetString("API_CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RouteCacheEnabled: viper.GetBool("ROUTE_CACHE_ENABLED"),
			RouteCacheTTL:     time.Duration(viper.GetInt("ROUTE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("AUTH_JWT_SECRET"),
			UserClaim: viper.GetString("AUTH_USER_CLAIM"),
		},
		Routing: RoutingConfig{
			Provider:         strings.ToLower(strings.TrimSpace(viper.GetString("ROUTING_PROVIDER"))),
			Timeout:          time.Duration(viper.GetInt("ROUTING_TIMEOUT_MS")) * time.Millisecond,
			RateLimitRPS:     viper.GetFloat64("ROUTING_RATE_LIMIT_RPS"),
			RateLimitBurst:   viper.GetInt("ROUTING_RATE_LIMIT_BURST"),
			RetryAttempts:    viper.GetInt("ROUTING_RETRY_ATTEMPTS"),
			RetryBackoff:     time.Duration(viper.GetInt("ROUTING_RETRY_BACKOFF_MS")) * time.Millisecond,
			EstimateSpeedMps: viper.GetFloat64("ROUTING_ESTIMATE_SPEED_MPS"),
		},
		Mapbox: MapboxConfig{
			AccessToken:     viper.GetString("MAPBOX_ACCESS_TOKEN"),
			BaseURL:         viper.GetString("MAPBOX_BASE_URL"),
			Profile:         viper.GetString("MAPBOX_PROFILE"),
			MaxMatrixPoints: viper.GetInt("MAPBOX_MAX_MATRIX_POINTS"),
			RequestTimeout:  viper.GetInt("MAPBOX_REQUEST_TIMEOUT"),
		},
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Set default values if not provided
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Cache.RouteCacheTTL == 0 {
		c.Cache.RouteCacheTTL = 24 * time.Hour
	}
	if c.Auth.UserClaim == "" {
		c.Auth.UserClaim = "sub"
	}
	if c.Routing.Provider == "" {
		c.Routing.Provider = ProviderNone
	}
	if c.Routing.Timeout == 0 {
		c.Routing.Timeout = 8 * time.Second
	}
	if c.Routing.RateLimitBurst == 0 {
		c.Routing.RateLimitBurst = 1
	}
	if c.Routing.RetryAttempts <= 0 {
		c.Routing.RetryAttempts = 1
	}
	if c.Routing.RetryBackoff == 0 {
		c.Routing.RetryBackoff = 200 * time.Millisecond
	}
	if c.Routing.EstimateSpeedMps == 0 {
		c.Routing.EstimateSpeedMps = 1.39 // ~5 km/h
	}
	if c.Mapbox.BaseURL == "" {
		c.Mapbox.BaseURL = "https://api.mapbox.com"
	}
	if c.Mapbox.Profile == "" {
		c.Mapbox.Profile = "mapbox/walking"
	}
	if c.Mapbox.MaxMatrixPoints == 0 {
		c.Mapbox.MaxMatrixPoints = 25
	}
	if c.Mapbox.RequestTimeout == 0 {
		c.Mapbox.RequestTimeout = 10
	}
}

// Validate checks settings that have no sensible default.
func (c *Config) Validate() error {
	switch c.Routing.Provider {
	case ProviderMapbox, ProviderHaversine, ProviderNone:
	default:
		return fmt.Errorf("unknown ROUTING_PROVIDER %q", c.Routing.Provider)
	}
	if c.Mapbox.MaxMatrixPoints < 2 {
		return fmt.Errorf("MAPBOX_MAX_MATRIX_POINTS must be at least 2, got %d", c.Mapbox.MaxMatrixPoints)
	}
	if c.Routing.EstimateSpeedMps < 0 {
		return fmt.Errorf("ROUTING_ESTIMATE_SPEED_MPS must be positive")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
