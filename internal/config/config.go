package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile           = ".env"
	defaultPort              = "8080"
	defaultEnvironment       = "dev"
	defaultLogLevel          = "info"
	defaultLocale            = "en"
	defaultTemplatesDir      = "templates"
	defaultReadHeaderTimeout = 10 * time.Second
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 15 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultRequestTimeout    = 30 * time.Second
)

// Config captures runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Session   SessionConfig
	Locale    LocaleConfig
	Analytics AnalyticsConfig
	Log       LogConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	RequestTimeout    time.Duration
}

// SiteConfig controls rendering.
type SiteConfig struct {
	Environment string // "dev" or "prod"
	// DevMode reparses templates from TemplatesDir on every request.
	DevMode      bool
	TemplatesDir string
	BaseURL      string
}

// SessionConfig configures the signed session cookie.
type SessionConfig struct {
	SigningKey string
	Secure     bool
}

// LocaleConfig lists supported UI languages.
type LocaleConfig struct {
	Default   string
	Supported []string
}

// AnalyticsConfig holds client instrumentation ids surfaced to templates.
type AnalyticsConfig struct {
	GA4MeasurementID string
	GTMContainerID   string
	Debug            bool
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string
}

// Prod reports whether the site runs in production.
func (c Config) Prod() bool { return c.Site.Environment == "prod" }

// Addr returns the listen address for the configured port.
func (c Config) Addr() string { return ":" + c.Server.Port }

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects explicit values that take precedence over the environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles configuration from defaults, the .env file, the process
// environment and explicit overrides, in increasing precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if value, ok := dotEnvValues[key]; ok {
			return value, true
		}
		return "", false
	}

	// Cloud Run style PORT is honoured when the prefixed key is absent.
	port := stringWithDefault(lookup, "PORT", defaultPort)
	env := strings.ToLower(stringWithDefault(lookup, "PORTFOLIO_ENV", defaultEnvironment))

	cfg := Config{
		Server: ServerConfig{
			Port:              stringWithDefault(lookup, "PORTFOLIO_PORT", port),
			ReadHeaderTimeout: durationWithDefault(lookup, "PORTFOLIO_READ_HEADER_TIMEOUT", defaultReadHeaderTimeout),
			ReadTimeout:       durationWithDefault(lookup, "PORTFOLIO_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:      durationWithDefault(lookup, "PORTFOLIO_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:       durationWithDefault(lookup, "PORTFOLIO_IDLE_TIMEOUT", defaultIdleTimeout),
			RequestTimeout:    durationWithDefault(lookup, "PORTFOLIO_REQUEST_TIMEOUT", defaultRequestTimeout),
		},
		Site: SiteConfig{
			Environment:  env,
			DevMode:      boolWithDefault(lookup, "PORTFOLIO_DEV", false),
			TemplatesDir: stringWithDefault(lookup, "PORTFOLIO_TEMPLATES_DIR", ""),
			BaseURL:      strings.TrimRight(stringWithDefault(lookup, "PORTFOLIO_BASE_URL", ""), "/"),
		},
		Session: SessionConfig{
			SigningKey: stringWithDefault(lookup, "PORTFOLIO_SESSION_SIGNING_KEY", ""),
			Secure:     env == "prod",
		},
		Locale: LocaleConfig{
			Default:   strings.ToLower(stringWithDefault(lookup, "PORTFOLIO_DEFAULT_LOCALE", defaultLocale)),
			Supported: csvWithDefault(lookup, "PORTFOLIO_LOCALES"),
		},
		Analytics: AnalyticsConfig{
			GA4MeasurementID: stringWithDefault(lookup, "PORTFOLIO_GA_MEASUREMENT_ID", ""),
			GTMContainerID:   stringWithDefault(lookup, "PORTFOLIO_GTM_CONTAINER_ID", ""),
			Debug:            boolWithDefault(lookup, "PORTFOLIO_ANALYTICS_DEBUG", false),
		},
		Log: LogConfig{
			Level: strings.ToLower(stringWithDefault(lookup, "PORTFOLIO_LOG_LEVEL", defaultLogLevel)),
		},
	}
	if len(cfg.Locale.Supported) == 0 {
		cfg.Locale.Supported = []string{"en", "fr"}
	}
	if cfg.Site.DevMode && cfg.Site.TemplatesDir == "" {
		cfg.Site.TemplatesDir = defaultTemplatesDir
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var invalid []string

	if n, err := strconv.Atoi(cfg.Server.Port); err != nil || n <= 0 || n > 65535 {
		invalid = append(invalid, "Server.Port")
	}
	if cfg.Server.RequestTimeout <= 0 {
		invalid = append(invalid, "Server.RequestTimeout")
	}
	switch cfg.Site.Environment {
	case "dev", "prod":
	default:
		invalid = append(invalid, "Site.Environment")
	}
	if cfg.Site.Environment == "prod" && strings.TrimSpace(cfg.Session.SigningKey) == "" {
		invalid = append(invalid, "Session.SigningKey")
	}
	found := false
	for _, l := range cfg.Locale.Supported {
		if l == cfg.Locale.Default {
			found = true
			break
		}
	}
	if !found {
		invalid = append(invalid, "Locale.Default")
	}

	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", path, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}

func csvWithDefault(lookup func(string) (string, bool), key string) []string {
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
