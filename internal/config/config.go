package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// StoreConfig selects and configures the durable key-value backend
type StoreConfig struct {
	// Driver is one of "sqlite", "postgres", "memory"
	Driver string `yaml:"driver"`
	// Path is the sqlite database file
	Path string `yaml:"path"`
	// DatabaseURL is the postgres connection string
	DatabaseURL string `yaml:"database_url"`
	// MigrationsDir holds the goose migrations for the postgres driver
	MigrationsDir string `yaml:"migrations_dir"`
}

// ShareConfig configures the share strategy chain
type ShareConfig struct {
	// NativeCommand is the native share handler; empty disables the
	// native strategy
	NativeCommand string `yaml:"native_command"`
	// SpoolDir receives fallback share files; empty uses the OS temp dir
	SpoolDir string `yaml:"spool_dir"`
}

// RateLimitConfig bounds requests per client IP
type RateLimitConfig struct {
	Requests   int `yaml:"requests"`
	WindowSecs int `yaml:"window_secs"`
}

// Config holds all application configuration
type Config struct {
	ListenAddr       string          `yaml:"listen_addr"`
	FeedURL          string          `yaml:"feed_url"`
	RandomImageURL   string          `yaml:"random_image_url"`
	CacheTTLSecs     int             `yaml:"cache_ttl_secs"`
	FetchTimeoutSecs int             `yaml:"fetch_timeout_secs"`
	LogLevel         string          `yaml:"log_level"`
	Store            StoreConfig     `yaml:"store"`
	Share            ShareConfig     `yaml:"share"`
	RateLimit        RateLimitConfig `yaml:"rate_limit"`
}

// Defaults returns a Config with all default values set
func Defaults() Config {
	return Config{
		ListenAddr:       ":8080",
		FeedURL:          "http://localhost:3000/api/photos",
		RandomImageURL:   "https://randomfox.ca/floof/",
		CacheTTLSecs:     300,
		FetchTimeoutSecs: 10,
		LogLevel:         "info",
		Store: StoreConfig{
			Driver:        "sqlite",
			Path:          "./photofeed.db",
			MigrationsDir: "internal/store/migrations",
		},
		RateLimit: RateLimitConfig{
			Requests:   100,
			WindowSecs: 60,
		},
	}
}

// Load returns defaults overlaid with the YAML file at path (when path
// is non-empty) and environment overrides. PHOTOFEED_ADDR,
// PHOTOFEED_DB, and DATABASE_URL override their file counterparts.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if envPath := os.Getenv("PHOTOFEED_CONFIG"); envPath != "" {
		path = envPath
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if addr := os.Getenv("PHOTOFEED_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if db := os.Getenv("PHOTOFEED_DB"); db != "" {
		cfg.Store.Path = db
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Store.DatabaseURL = dbURL
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that required fields are present and values are valid
func (c *Config) Validate() error {
	if c.FeedURL == "" {
		return fmt.Errorf("feed_url is required")
	}
	if c.CacheTTLSecs <= 0 {
		return fmt.Errorf("cache_ttl_secs must be positive")
	}
	if c.FetchTimeoutSecs <= 0 {
		return fmt.Errorf("fetch_timeout_secs must be positive")
	}

	switch c.Store.Driver {
	case "sqlite":
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("store.database_url is required for the postgres driver")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	return nil
}

// CacheTTL returns the feed cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSecs) * time.Second
}

// FetchTimeout returns the per-call external fetch timeout as a duration
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSecs) * time.Second
}

// RateLimitWindow returns the rate limit window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimit.WindowSecs) * time.Second
}
