package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Log    LogConfig
	Auth   AuthConfig
	Quota  QuotaConfig
	Report ReportConfig
	Map    MapConfig
	Mapbox MapboxConfig
	Redis  RedisConfig
	Stream StreamConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	SessionIdle   time.Duration
	SweepInterval time.Duration
}

// QuotaConfig - стартовые лимиты, выдаваемые при входе
type QuotaConfig struct {
	InitialReports int
	InitialUpvotes int
}

type ReportConfig struct {
	PlaceholderImageURL string
}

type MapConfig struct {
	FallbackImageURL string
	Area             string
	CenterLat        float64
	CenterLon        float64
	Zoom             float64
	Width            int
	Height           int
	ImageCacheTTL    time.Duration
}

type MapboxConfig struct {
	AccessToken    string
	BaseURL        string
	Style          string
	RequestTimeout int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type StreamConfig struct {
	ReportEvents string
}

type CORSConfig struct {
	AllowOrigins string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("AUTH_JWT_SECRET", "dev-secret-change-me")
	v.SetDefault("AUTH_TOKEN_TTL", 86400)
	v.SetDefault("SESSION_IDLE_TTL", 7200)
	v.SetDefault("SESSION_SWEEP_INTERVAL", 60)

	v.SetDefault("QUOTA_INITIAL_REPORTS", 5)
	v.SetDefault("QUOTA_INITIAL_UPVOTES", 5)

	v.SetDefault("REPORT_PLACEHOLDER_IMAGE", "https://images.unsplash.com/photo-1477959858617-67f85cf4f1df?w=800")

	v.SetDefault("MAP_FALLBACK_IMAGE_URL", "https://i.imgur.com/ZZRarnG.png")
	v.SetDefault("MAP_AREA", "Balagtas, Bulacan")
	v.SetDefault("MAP_CENTER_LAT", 14.811488)
	v.SetDefault("MAP_CENTER_LON", 120.893985)
	v.SetDefault("MAP_ZOOM", 16)
	v.SetDefault("MAP_WIDTH", 800)
	v.SetDefault("MAP_HEIGHT", 1000)
	v.SetDefault("MAP_IMAGE_CACHE_TTL", 86400)

	v.SetDefault("MAPBOX_BASE_URL", "https://api.mapbox.com")
	v.SetDefault("MAPBOX_STYLE", "mapbox/streets-v12")
	v.SetDefault("MAPBOX_REQUEST_TIMEOUT", 10)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("REPORT_EVENTS_STREAM", "stream:report:events")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")
}

// Load читает конфигурацию из .env (если файл есть) и переменных окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - то же, что Load, но с явным путём к env-файлу
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			JWTSecret:     v.GetString("AUTH_JWT_SECRET"),
			TokenTTL:      time.Duration(v.GetInt("AUTH_TOKEN_TTL")) * time.Second,
			SessionIdle:   time.Duration(v.GetInt("SESSION_IDLE_TTL")) * time.Second,
			SweepInterval: time.Duration(v.GetInt("SESSION_SWEEP_INTERVAL")) * time.Second,
		},
		Quota: QuotaConfig{
			InitialReports: v.GetInt("QUOTA_INITIAL_REPORTS"),
			InitialUpvotes: v.GetInt("QUOTA_INITIAL_UPVOTES"),
		},
		Report: ReportConfig{
			PlaceholderImageURL: v.GetString("REPORT_PLACEHOLDER_IMAGE"),
		},
		Map: MapConfig{
			FallbackImageURL: v.GetString("MAP_FALLBACK_IMAGE_URL"),
			Area:             v.GetString("MAP_AREA"),
			CenterLat:        v.GetFloat64("MAP_CENTER_LAT"),
			CenterLon:        v.GetFloat64("MAP_CENTER_LON"),
			Zoom:             v.GetFloat64("MAP_ZOOM"),
			Width:            v.GetInt("MAP_WIDTH"),
			Height:           v.GetInt("MAP_HEIGHT"),
			ImageCacheTTL:    time.Duration(v.GetInt("MAP_IMAGE_CACHE_TTL")) * time.Second,
		},
		Mapbox: MapboxConfig{
			AccessToken:    v.GetString("MAPBOX_ACCESS_TOKEN"),
			BaseURL:        strings.TrimRight(v.GetString("MAPBOX_BASE_URL"), "/"),
			Style:          v.GetString("MAPBOX_STYLE"),
			RequestTimeout: v.GetInt("MAPBOX_REQUEST_TIMEOUT"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Stream: StreamConfig{
			ReportEvents: v.GetString("REPORT_EVENTS_STREAM"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Quota.InitialReports < 0 || c.Quota.InitialUpvotes < 0 {
		return fmt.Errorf("quota values must be non-negative")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required")
	}
	if c.Auth.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// MapboxEnabled - настроен ли токен Mapbox для статичной карты
func (c *Config) MapboxEnabled() bool {
	return c.Mapbox.AccessToken != ""
}
