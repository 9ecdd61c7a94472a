package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Feed     FeedConfig     `yaml:"feed"`
	Indexer  IndexerConfig  `yaml:"indexer"`
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// FeedConfig describes the upstream stash change feed.
type FeedConfig struct {
	URL                   string        `yaml:"url"`
	CursorParam           string        `yaml:"cursor_param"`
	MinIntervalSeconds    float64       `yaml:"min_interval_seconds"`
	MinInterval           time.Duration `yaml:"-"`
	RequestTimeoutSeconds float64       `yaml:"request_timeout_seconds"`
	RequestTimeout        time.Duration `yaml:"-"`
	UserAgent             string        `yaml:"user_agent"`
	HTTPProxy             string        `yaml:"http_proxy"`
}

// IndexerConfig holds the cycle driver settings.
type IndexerConfig struct {
	Workers    int      `yaml:"workers"`
	MaxUpdates int      `yaml:"max_updates"` // 0 runs until stopped
	Leagues    []string `yaml:"leagues"`     // empty accepts every league
}

// StoreConfig holds snapshot cache and cursor persistence settings.
type StoreConfig struct {
	SnapshotCacheTTLSeconds int           `yaml:"snapshot_cache_ttl_seconds"`
	SnapshotCacheTTL        time.Duration `yaml:"-"`
	CursorBackend           string        `yaml:"cursor_backend"` // "db" or "file"
	CursorFile              string        `yaml:"cursor_file"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // "postgres" or "sqlite"
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// ServerConfig holds the status API configuration.
type ServerConfig struct {
	Enabled         *bool   `yaml:"enabled"`
	Port            int     `yaml:"port"`
	RequestIPHeader string  `yaml:"request_ip_header"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`

	// TrustedProxies lists the IPs or CIDRs allowed to set RequestIPHeader.
	// Requests from anyone else are keyed by their remote address.
	TrustedProxies []string `yaml:"trusted_proxies"`
}

// IsEnabled reports whether the status API should be started. Defaults to true.
func (s ServerConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	CursorBackendDB   = "db"
	CursorBackendFile = "file"
)

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills unset values and derives the duration fields.
func (c *Config) ApplyDefaults() {
	if c.Feed.URL == "" {
		c.Feed.URL = "http://api.pathofexile.com/public-stash-tabs"
	}
	if c.Feed.CursorParam == "" {
		c.Feed.CursorParam = "id"
	}
	if c.Feed.MinIntervalSeconds == 0 {
		c.Feed.MinIntervalSeconds = 5
	}
	c.Feed.MinInterval = seconds(c.Feed.MinIntervalSeconds)
	if c.Feed.RequestTimeoutSeconds == 0 {
		c.Feed.RequestTimeoutSeconds = 5
	}
	c.Feed.RequestTimeout = seconds(c.Feed.RequestTimeoutSeconds)
	if c.Feed.UserAgent == "" {
		c.Feed.UserAgent = "stash-indexer/1.0"
	}

	if c.Indexer.Workers <= 0 {
		c.Indexer.Workers = runtime.NumCPU()
	}

	if c.Store.SnapshotCacheTTLSeconds <= 0 {
		c.Store.SnapshotCacheTTLSeconds = 600
	}
	c.Store.SnapshotCacheTTL = time.Duration(c.Store.SnapshotCacheTTLSeconds) * time.Second
	if c.Store.CursorBackend == "" {
		c.Store.CursorBackend = CursorBackendDB
	}
	if c.Store.CursorFile == "" {
		c.Store.CursorFile = "next_change_id.txt"
	}

	if c.Database.Driver == "" {
		c.Database.Driver = DriverPostgres
	}
	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns <= 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetimeMinutes <= 0 {
		c.Database.ConnMaxLifetimeMinutes = 30
	}

	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.RateLimitPerSec <= 0 {
		c.Server.RateLimitPerSec = 10
	}
	if c.Server.CacheTTLSeconds <= 0 {
		c.Server.CacheTTLSeconds = 30
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

// Validate rejects configurations the indexer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("database.dsn is required"))
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown database.driver %q", c.Database.Driver))
	}
	switch c.Store.CursorBackend {
	case CursorBackendDB, CursorBackendFile:
	default:
		errs = append(errs, fmt.Errorf("unknown store.cursor_backend %q", c.Store.CursorBackend))
	}
	if c.Feed.MinIntervalSeconds < 0 {
		errs = append(errs, errors.New("feed.min_interval_seconds must not be negative"))
	}
	if c.Feed.RequestTimeoutSeconds < 0 {
		errs = append(errs, errors.New("feed.request_timeout_seconds must not be negative"))
	}
	if c.Indexer.MaxUpdates < 0 {
		errs = append(errs, errors.New("indexer.max_updates must not be negative"))
	}
	for _, p := range c.Server.TrustedProxies {
		if net.ParseIP(p) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(p); err != nil {
			errs = append(errs, fmt.Errorf("server.trusted_proxies: %q is neither an IP nor a CIDR", p))
		}
	}
	return errors.Join(errs...)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
