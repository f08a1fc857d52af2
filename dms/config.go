package dms

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/powerops/dmgen"
)

// Platform limits.
const (
	// DefaultLimitRead is the default number of instances a read returns.
	DefaultLimitRead = 25
	// InstanceQueryLimit is the maximum page size of list, search and query.
	InstanceQueryLimit = 1000
	// ChunkSize is the maximum number of items per write, delete or retrieve request.
	ChunkSize = 1000
)

// Config configures a Client. It can be loaded from YAML with LoadConfig
// and adjusted with Options.
type Config struct {
	// BaseURL is the platform URL, e.g. https://api.example.com.
	BaseURL string `yaml:"base_url"`
	// Project scopes every request.
	Project string `yaml:"project"`
	// ClientName is sent in the X-Client-Name header.
	ClientName string `yaml:"client_name"`

	// Token is a static bearer token. Ignored when Credentials is set.
	Token string `yaml:"token"`
	// Credentials configures the OAuth2 client-credentials grant.
	Credentials *CredentialsConfig `yaml:"credentials"`

	// Timeout for individual requests (default: 60s).
	Timeout time.Duration `yaml:"timeout"`
	// MaxRetries for failed requests (default: 3).
	MaxRetries int `yaml:"max_retries"`
	// RateLimit requests per second (default: 10).
	RateLimit float64 `yaml:"rate_limit"`
	// RateBurst maximum burst size (default: 5).
	RateBurst int `yaml:"rate_burst"`
	// MaxWorkers bounds concurrent chunk requests (default: 5).
	MaxWorkers int `yaml:"max_workers"`
	// SlowThreshold marks requests as slow (default: 2s, 0 disables).
	SlowThreshold time.Duration `yaml:"slow_threshold"`
	// CacheTTL is the lifetime of cached reads when a Cache is set.
	CacheTTL time.Duration `yaml:"cache_ttl"`

	TokenSource TokenSource       `yaml:"-"`
	Transport   http.RoundTripper `yaml:"-"`
	Cache       dmgen.Cache       `yaml:"-"`
	Logger      *slog.Logger      `yaml:"-"`
	SlowHook    SlowRequestHook   `yaml:"-"`
}

// CredentialsConfig is the YAML form of ClientCredentials.
type CredentialsConfig struct {
	TokenURL     string   `yaml:"token_url"`
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	Scopes       []string `yaml:"scopes"`
	Audience     string   `yaml:"audience"`
}

// DefaultConfig returns a config with the default limits.
func DefaultConfig() *Config {
	return &Config{
		ClientName:    "dmgen",
		Timeout:       60 * time.Second,
		MaxRetries:    3,
		RateLimit:     10,
		RateBurst:     5,
		MaxWorkers:    5,
		SlowThreshold: 2 * time.Second,
		CacheTTL:      5 * time.Minute,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig and applies
// DMS_* environment overrides. An empty path reads the environment only.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("dms: read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("dms: parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("DMS_BASE_URL", &c.BaseURL)
	str("DMS_PROJECT", &c.Project)
	str("DMS_CLIENT_NAME", &c.ClientName)
	str("DMS_TOKEN", &c.Token)
	if id, ok := lookup("DMS_CLIENT_ID"); ok && id != "" {
		if c.Credentials == nil {
			c.Credentials = &CredentialsConfig{}
		}
		c.Credentials.ClientID = id
		str("DMS_CLIENT_SECRET", &c.Credentials.ClientSecret)
		str("DMS_TOKEN_URL", &c.Credentials.TokenURL)
		if scopes, ok := lookup("DMS_SCOPES"); ok && scopes != "" {
			c.Credentials.Scopes = strings.Fields(scopes)
		}
	}
	if v, ok := lookup("DMS_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("dms: DMS_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v, ok := lookup("DMS_MAX_WORKERS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("dms: DMS_MAX_WORKERS: %w", err)
		}
		c.MaxWorkers = n
	}
	return nil
}

// Validate checks the config is usable.
func (c *Config) Validate() error {
	var errs []error
	if c.BaseURL == "" {
		errs = append(errs, errors.New("base_url is required"))
	}
	if c.Project == "" {
		errs = append(errs, errors.New("project is required"))
	}
	if c.tokenSource() == nil {
		errs = append(errs, errors.New("one of token, credentials or a token source is required"))
	}
	if c.MaxWorkers < 1 {
		errs = append(errs, fmt.Errorf("max_workers must be positive, got %d", c.MaxWorkers))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("dms: invalid config: %w", err)
	}
	return nil
}

func (c *Config) tokenSource() TokenSource {
	switch {
	case c.TokenSource != nil:
		return c.TokenSource
	case c.Credentials != nil && c.Credentials.ClientID != "":
		c.TokenSource = &ClientCredentials{
			TokenURL:     c.Credentials.TokenURL,
			ClientID:     c.Credentials.ClientID,
			ClientSecret: c.Credentials.ClientSecret,
			Scopes:       c.Credentials.Scopes,
			Audience:     c.Credentials.Audience,
		}
		return c.TokenSource
	case c.Token != "":
		return StaticToken(c.Token)
	}
	return nil
}

// Option configures a Client.
type Option func(*Config) error

// WithConfig replaces the whole config. Options after it still apply.
func WithConfig(cfg *Config) Option {
	return func(c *Config) error {
		if cfg == nil {
			return errors.New("dms: config cannot be nil")
		}
		*c = *cfg
		return nil
	}
}

// WithBaseURL sets the platform URL.
func WithBaseURL(u string) Option {
	return func(c *Config) error {
		if u == "" {
			return errors.New("dms: base URL cannot be empty")
		}
		c.BaseURL = strings.TrimSuffix(u, "/")
		return nil
	}
}

// WithProject sets the project.
func WithProject(project string) Option {
	return func(c *Config) error {
		if project == "" {
			return errors.New("dms: project cannot be empty")
		}
		c.Project = project
		return nil
	}
}

// WithTokenSource sets the token source.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Config) error {
		c.TokenSource = ts
		return nil
	}
}

// WithTransport sets the HTTP transport, e.g. for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Config) error {
		c.Transport = rt
		return nil
	}
}

// WithRetries sets the maximum number of retries.
func WithRetries(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("dms: retries cannot be negative, got %d", n)
		}
		c.MaxRetries = n
		return nil
	}
}

// WithRateLimit sets the client-side rate limit.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Config) error {
		if perSecond <= 0 || burst <= 0 {
			return fmt.Errorf("dms: invalid rate limit %v/%d", perSecond, burst)
		}
		c.RateLimit, c.RateBurst = perSecond, burst
		return nil
	}
}

// WithMaxWorkers bounds concurrent chunk requests.
func WithMaxWorkers(n int) Option {
	return func(c *Config) error {
		c.MaxWorkers = n
		return nil
	}
}

// WithCache enables the response cache for reads.
func WithCache(cache dmgen.Cache, ttl time.Duration) Option {
	return func(c *Config) error {
		c.Cache, c.CacheTTL = cache, ttl
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}

// WithSlowThreshold sets the threshold for slow request detection.
func WithSlowThreshold(d time.Duration) Option {
	return func(c *Config) error {
		c.SlowThreshold = d
		return nil
	}
}

// WithSlowRequestHook sets a callback for slow requests.
func WithSlowRequestHook(hook SlowRequestHook) Option {
	return func(c *Config) error {
		c.SlowHook = hook
		return nil
	}
}
