package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Google   GoogleConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Tile     TileConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// GoogleConfig - доступ к Google Maps for Business
type GoogleConfig struct {
	// Credentials в формате id=<client-id>;key=<private-key>
	Credentials    string
	BaseURL        string
	RequestTimeout int // seconds
	// CacheServiceResponses пропускает geocode/directions через URL кеш
	CacheServiceResponses bool
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

// CacheConfig - хранилище URL кеша
type CacheConfig struct {
	// Backend: file, memory, redis, postgres, disabled
	Backend       string
	MaxAge        time.Duration
	FileDir       string
	MemoryEntries int
	RedisTTL      time.Duration
}

type TileConfig struct {
	Size           int
	BrandingMargin int
	RemoveBranding bool
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	// .env необязателен, переменные окружения имеют приоритет
	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("GOOGLE_BASE_URL", "https://maps.googleapis.com")
	v.SetDefault("GOOGLE_REQUEST_TIMEOUT", 30)
	v.SetDefault("GOOGLE_CACHE_SERVICE_RESPONSES", false)

	v.SetDefault("CACHE_BACKEND", "file")
	v.SetDefault("CACHE_MAX_AGE", int((20 * 24 * time.Hour).Seconds()))
	v.SetDefault("CACHE_FILE_DIR", "./data/urlcache")
	v.SetDefault("CACHE_MEMORY_ENTRIES", 4096)
	v.SetDefault("CACHE_REDIS_TTL", 0)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("TILE_SIZE", 256)
	v.SetDefault("TILE_BRANDING_MARGIN", 25)
	v.SetDefault("TILE_REMOVE_BRANDING", true)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Google: GoogleConfig{
			Credentials:           v.GetString("GOOGLE_CREDENTIALS"),
			BaseURL:               v.GetString("GOOGLE_BASE_URL"),
			RequestTimeout:        v.GetInt("GOOGLE_REQUEST_TIMEOUT"),
			CacheServiceResponses: v.GetBool("GOOGLE_CACHE_SERVICE_RESPONSES"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Backend:       v.GetString("CACHE_BACKEND"),
			MaxAge:        time.Duration(v.GetInt("CACHE_MAX_AGE")) * time.Second,
			FileDir:       v.GetString("CACHE_FILE_DIR"),
			MemoryEntries: v.GetInt("CACHE_MEMORY_ENTRIES"),
			RedisTTL:      time.Duration(v.GetInt("CACHE_REDIS_TTL")) * time.Second,
		},
		Tile: TileConfig{
			Size:           v.GetInt("TILE_SIZE"),
			BrandingMargin: v.GetInt("TILE_BRANDING_MARGIN"),
			RemoveBranding: v.GetBool("TILE_REMOVE_BRANDING"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if cfg.Google.RequestTimeout <= 0 {
		cfg.Google.RequestTimeout = 30
	}
	if cfg.Cache.MaxAge <= 0 {
		cfg.Cache.MaxAge = 20 * 24 * time.Hour
	}
	if cfg.Tile.Size <= 0 {
		return nil, fmt.Errorf("TILE_SIZE must be positive, got %d", cfg.Tile.Size)
	}
	if cfg.Tile.BrandingMargin < 0 {
		return nil, fmt.Errorf("TILE_BRANDING_MARGIN must not be negative, got %d", cfg.Tile.BrandingMargin)
	}

	return cfg, nil
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

// Timeout - таймаут HTTP клиента Google
func (c *GoogleConfig) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}
