package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Source    SourceConfig
	Public    SurfaceConfig
	Moderator SurfaceConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
	// ReadOnly drops the moderator surface entirely.
	ReadOnly bool `mapstructure:"read_only"`
}

type LogConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type SourceConfig struct {
	Type           string `mapstructure:"type"`
	Path           string `mapstructure:"path"`
	URL            string `mapstructure:"url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	CacheSeconds   int    `mapstructure:"cache_seconds"`
	Watch          bool   `mapstructure:"watch"`
	ObjectKey      string `mapstructure:"object_key"`
	MinioEndpoint  string `mapstructure:"minio_endpoint"`
	MinioAccessID  string `mapstructure:"minio_access_key"`
	MinioSecret    string `mapstructure:"minio_secret_key"`
	MinioBucket    string `mapstructure:"minio_bucket"`
	MinioUseSSL    bool   `mapstructure:"minio_use_ssl"`
	OSSEndpoint    string `mapstructure:"oss_endpoint"`
	OSSAccessKey   string `mapstructure:"oss_access_key"`
	OSSSecretKey   string `mapstructure:"oss_secret_key"`
	OSSBucket      string `mapstructure:"oss_bucket"`
}

// SurfaceConfig parameterizes the list/search/pagination behaviour of one surface.
type SurfaceConfig struct {
	ItemsPerPage        int    `mapstructure:"items_per_page"`
	SortApprovedFirst   bool   `mapstructure:"sort_approved_first"`
	PaginationStyle     string `mapstructure:"pagination_style"`
	IncludeReasonSearch bool   `mapstructure:"include_reason_in_search"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_only", false)

	v.SetDefault("log.path", "logs/app.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)

	v.SetDefault("source.type", "file")
	v.SetDefault("source.path", "levels.json")
	v.SetDefault("source.timeout_seconds", 10)
	v.SetDefault("source.cache_seconds", 300)
	v.SetDefault("source.object_key", "levels.json")

	v.SetDefault("public.items_per_page", 12)
	v.SetDefault("public.sort_approved_first", true)
	v.SetDefault("public.pagination_style", "sliding")
	v.SetDefault("public.include_reason_in_search", false)

	v.SetDefault("moderator.items_per_page", 6)
	v.SetDefault("moderator.sort_approved_first", false)
	v.SetDefault("moderator.pagination_style", "compact")
	v.SetDefault("moderator.include_reason_in_search", true)

	v.SetDefault("rate_limit.max_requests", 6000)
	v.SetDefault("rate_limit.window_minutes", 1)
}

// LoadConfig reads config.yaml from path. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("LEVEL_TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Source
	v.BindEnv("source.type", "SOURCE_TYPE")
	v.BindEnv("source.path", "SOURCE_PATH")
	v.BindEnv("source.url", "SOURCE_URL")
	v.BindEnv("source.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("source.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("source.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("source.minio_bucket", "MINIO_BUCKET")
	v.BindEnv("source.oss_endpoint", "OSS_ENDPOINT")
	v.BindEnv("source.oss_access_key", "OSS_ACCESS_KEY")
	v.BindEnv("source.oss_secret_key", "OSS_SECRET_KEY")
	v.BindEnv("source.oss_bucket", "OSS_BUCKET")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	surfaces := []struct {
		name string
		SurfaceConfig
	}{{"public", c.Public}, {"moderator", c.Moderator}}
	for _, s := range surfaces {
		name := s.name
		if s.ItemsPerPage <= 0 {
			return fmt.Errorf("%s.items_per_page must be positive, got %d", name, s.ItemsPerPage)
		}
		switch s.PaginationStyle {
		case "sliding", "compact":
		default:
			return fmt.Errorf("%s.pagination_style must be sliding or compact, got %q", name, s.PaginationStyle)
		}
	}
	switch c.Source.Type {
	case "file":
		if c.Source.Path == "" {
			return fmt.Errorf("source.path is required for file sources")
		}
	case "http":
		if c.Source.URL == "" {
			return fmt.Errorf("source.url is required for http sources")
		}
	case "minio":
		if c.Source.MinioEndpoint == "" || c.Source.MinioBucket == "" {
			return fmt.Errorf("source.minio_endpoint and source.minio_bucket are required for minio sources")
		}
	case "oss":
		if c.Source.OSSEndpoint == "" || c.Source.OSSBucket == "" {
			return fmt.Errorf("source.oss_endpoint and source.oss_bucket are required for oss sources")
		}
	default:
		return fmt.Errorf("unknown source.type %q", c.Source.Type)
	}
	if c.RateLimit.MaxRequests <= 0 || c.RateLimit.WindowMinutes <= 0 {
		return fmt.Errorf("rate_limit.max_requests and rate_limit.window_minutes must be positive")
	}
	return nil
}
