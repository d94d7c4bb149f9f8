package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	AppEnv string
	Port   string

	DataDir        string
	AdPackagesFile string
	WatchData      bool

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	StateBackend  string
	RedisURL      string
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	JWTSecret         string
	JWTExpiry         string
	AdminEmail        string
	AdminPasswordHash string

	UploadDir     string
	MaxUploadSize int64

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	SMTPFrom   string
	SMTPNotify string

	CloudinaryURL       string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	OriginURL        string
	LogLevel         string
	LogFormat        string
	TelemetryEnabled bool
}

var AppConfig *Config

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		AppEnv:              v.GetString("APP_ENV"),
		Port:                v.GetString("APP_PORT"),
		DataDir:             v.GetString("DATA_DIR"),
		AdPackagesFile:      v.GetString("AD_PACKAGES_FILE"),
		WatchData:           v.GetBool("WATCH_DATA"),
		DatabaseURL:         v.GetString("DATABASE_URL"),
		DBHost:              v.GetString("DB_HOST"),
		DBPort:              v.GetString("DB_PORT"),
		DBUser:              v.GetString("DB_USER"),
		DBPassword:          v.GetString("DB_PASSWORD"),
		DBName:              v.GetString("DB_NAME"),
		DBSSLMode:           v.GetString("DB_SSLMODE"),
		StateBackend:        strings.ToLower(v.GetString("STATE_BACKEND")),
		RedisURL:            v.GetString("REDIS_URL"),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		RedisPassword:       v.GetString("REDIS_PASSWORD"),
		CacheTTL:            v.GetDuration("CACHE_TTL"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTExpiry:           v.GetString("JWT_EXPIRY"),
		AdminEmail:          v.GetString("ADMIN_EMAIL"),
		AdminPasswordHash:   v.GetString("ADMIN_PASSWORD_HASH"),
		UploadDir:           v.GetString("UPLOAD_DIR"),
		MaxUploadSize:       v.GetInt64("MAX_UPLOAD_SIZE"),
		SMTPHost:            v.GetString("SMTP_HOST"),
		SMTPPort:            v.GetInt("SMTP_PORT"),
		SMTPUser:            v.GetString("SMTP_USER"),
		SMTPPass:            v.GetString("SMTP_PASS"),
		SMTPFrom:            v.GetString("SMTP_FROM"),
		SMTPNotify:          v.GetString("SMTP_NOTIFY_TO"),
		CloudinaryURL:       v.GetString("CLOUDINARY_URL"),
		CloudinaryCloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    v.GetString("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: v.GetString("CLOUDINARY_API_SECRET"),
		OriginURL:           v.GetString("ORIGIN_URL"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		LogFormat:           v.GetString("LOG_FORMAT"),
		TelemetryEnabled:    v.GetBool("TELEMETRY_ENABLED"),
	}
	if port := os.Getenv("PORT"); port != "" && os.Getenv("APP_PORT") == "" {
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = cfg
	log.Printf("Configuration loaded (env=%s, state=%s, data=%s)", cfg.AppEnv, cfg.StateBackend, cfg.DataDir)
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8082")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("AD_PACKAGES_FILE", "./data/ad-packages.yaml")
	v.SetDefault("WATCH_DATA", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "lafamilia")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("STATE_BACKEND", BackendMemory)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("CACHE_TTL", 5*time.Minute)
	v.SetDefault("JWT_EXPIRY", "24h")
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("MAX_UPLOAD_SIZE", 5242880)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}

// Validate checks settings that would otherwise fail later at first use.
func (c *Config) Validate() error {
	switch c.StateBackend {
	case BackendMemory:
	case BackendRedis:
		if c.RedisURL == "" && c.RedisAddr == "" {
			return fmt.Errorf("STATE_BACKEND=redis requires REDIS_URL or REDIS_ADDR")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" && (c.DBHost == "" || c.DBName == "") {
			return fmt.Errorf("STATE_BACKEND=postgres requires DATABASE_URL or DB_HOST and DB_NAME")
		}
	default:
		return fmt.Errorf("STATE_BACKEND must be one of memory, redis, postgres, got %q", c.StateBackend)
	}

	info, err := os.Stat(c.DataDir)
	if err != nil {
		return fmt.Errorf("DATA_DIR %q is not readable: %w", c.DataDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("DATA_DIR %q is not a directory", c.DataDir)
	}

	if _, err := time.ParseDuration(c.JWTExpiry); err != nil {
		return fmt.Errorf("JWT_EXPIRY %q is not a duration: %w", c.JWTExpiry, err)
	}
	if c.AdminPasswordHash != "" && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when admin login is enabled")
	}
	if c.AppEnv == "production" && c.JWTSecret != "" && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters in production")
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}
	return nil
}

// AdminEnabled reports whether the admin endpoints can issue tokens.
func (c *Config) AdminEnabled() bool {
	return c.AdminEmail != "" && c.AdminPasswordHash != "" && c.JWTSecret != ""
}

func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) NeedsDatabase() bool {
	return c.StateBackend == BackendPostgres || c.DatabaseURL != ""
}
