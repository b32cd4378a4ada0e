// Package config loads the service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"qrscanner/pkg/urlpolicy"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Opener modes.
const (
	OpenerBrowser  = "browser"
	OpenerChromedp = "chromedp"
	OpenerNone     = "none"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`
	// TrustedDomain is the only registrable domain whose URLs are accepted
	TrustedDomain string `env:"TRUSTED_DOMAIN" env-default:"theocourbe.com" yaml:"trustedDomain"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response.
		// Server-sent event streams are exempt.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxUploadBytes caps uploaded images and pushed frames
		MaxUploadBytes int64 `env:"HTTP_MAX_UPLOAD_BYTES" env-default:"10485760" yaml:"maxUploadBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists the browser origins allowed to call the API. Empty allows any.
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-separator:"," yaml:"corsOrigins"`
	} `yaml:"http"`

	// JWT configures bearer authentication of the API
	JWT struct {
		// PublicKey is a PEM encoded RSA public key. Authentication is disabled when empty.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is a PEM encoded RSA private key used by the jwt command.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// TTL is the lifetime of minted tokens
		TTL time.Duration `env:"JWT_TTL" env-default:"24h" yaml:"ttl"`
	} `yaml:"jwt"`

	// Camera configures frame capture
	Camera struct {
		// Buffer is the number of pushed frames queued before the oldest is dropped
		Buffer int `env:"CAMERA_BUFFER" env-default:"4" yaml:"buffer"`
		// Interval is the frame interval of the directory camera
		Interval time.Duration `env:"CAMERA_INTERVAL" env-default:"200ms" yaml:"interval"`
		// TryHarder makes the decoder spend more time per frame
		TryHarder bool `env:"CAMERA_TRY_HARDER" env-default:"true" yaml:"tryHarder"`
	} `yaml:"camera"`

	// Opener configures how validated URLs are opened
	Opener struct {
		// Mode is one of browser, chromedp or none
		Mode string `env:"OPENER_MODE" env-default:"browser" yaml:"mode"`
		// Headless runs the chromedp opener without a window
		Headless bool `env:"OPENER_HEADLESS" env-default:"false" yaml:"headless"`
		// ChromePath overrides the Chrome binary used by the chromedp opener
		ChromePath string `env:"OPENER_CHROME_PATH" yaml:"chromePath"`
	} `yaml:"opener"`

	// Clipboard configures clipboard access
	Clipboard struct {
		// Enabled gives the controller access to the system clipboard
		Enabled bool `env:"CLIPBOARD_ENABLED" env-default:"true" yaml:"enabled"`
	} `yaml:"clipboard"`

	// Redis configures the notification publisher. It is disabled when URL is empty.
	Redis struct {
		// URL is a redis:// connection URL
		URL string `env:"REDIS_URL" yaml:"url"`
		// Channel is the pub/sub channel notifications are published on
		Channel string `env:"REDIS_CHANNEL" env-default:"qrscanner:notifications" yaml:"channel"`
		// DialTimeout bounds connection attempts
		DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s" yaml:"dialTimeout"`
		// WriteTimeout bounds each publish
		WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" env-default:"2s" yaml:"writeTimeout"`
	} `yaml:"redis"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"qrscanner" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// History configures the scan history kept in the database
	History struct {
		// Enabled records every decoded code. It requires the database.
		Enabled bool `env:"HISTORY_ENABLED" env-default:"false" yaml:"enabled"`
		// Retention is the age after which records are pruned. Zero keeps them forever.
		Retention time.Duration `env:"HISTORY_RETENTION" env-default:"720h" yaml:"retention"`
		// Keep caps the number of records kept. Zero disables the cap.
		Keep uint `env:"HISTORY_KEEP" env-default:"10000" yaml:"keep"`
		// PruneInterval schedules the prune job
		PruneInterval time.Duration `env:"HISTORY_PRUNE_INTERVAL" env-default:"1h" yaml:"pruneInterval"`
		// Workers bounds concurrent background jobs
		Workers int `env:"HISTORY_WORKERS" env-default:"2" yaml:"workers"`
	} `yaml:"history"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads defaults and environment variables only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values cleanenv cannot.
func (c *Config) Validate() error {
	if _, err := urlpolicy.New(c.TrustedDomain); err != nil {
		return fmt.Errorf("invalid trustedDomain: %w", err)
	}

	switch c.Opener.Mode {
	case OpenerBrowser, OpenerChromedp, OpenerNone:
	default:
		return fmt.Errorf("invalid opener.mode %q: want %s, %s or %s",
			c.Opener.Mode, OpenerBrowser, OpenerChromedp, OpenerNone)
	}

	if c.Camera.Buffer <= 0 {
		return fmt.Errorf("invalid camera.buffer %d: must be positive", c.Camera.Buffer)
	}

	return nil
}
