package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary Primary       `koanf:"primary"`
	Server  ServerConfig  `koanf:"server"`
	Logger  LoggerConfig  `koanf:"logger"`
	Mollie  GatewayConfig `koanf:"mollie"`
	SumUp   GatewayConfig `koanf:"sumup"`
	Retry   RetryConfig   `koanf:"retry"`
	Worker  WorkerConfig  `koanf:"worker"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

// GatewayConfig configures one gateway adapter. Credentials and URLs are
// required up front; a misconfigured adapter must fail at construction, not
// on the first payment.
type GatewayConfig struct {
	APIKey        string `koanf:"api_key" validate:"required"`
	RedirectURL   string `koanf:"redirect_url" validate:"required,url"`
	HostURL       string `koanf:"host_url" validate:"required,url"`
	MerchantCode  string `koanf:"merchant_code"`
	AutoCapture   bool   `koanf:"auto_capture"`
	Description   string `koanf:"description"`
	Debug         bool   `koanf:"debug"`
	Environment   string `koanf:"environment" validate:"omitempty,oneof=test live"`
	WebhookSecret string `koanf:"webhook_secret" validate:"required"`
	// BaseURL overrides the gateway API address, for sandboxes and tests.
	BaseURL     string        `koanf:"base_url"`
	ConnTimeout time.Duration `koanf:"conn_timeout"`
	// Methods lists extra payment-method variants to register alongside the
	// gateway's base provider, e.g. "ideal" or "creditcard" for Mollie.
	Methods []string `koanf:"methods"`
}

// Validate re-checks a gateway section at adapter construction time, so
// adapters built outside LoadConfig get the same guarantees.
func (c GatewayConfig) Validate() error {
	return validator.New().Struct(c)
}

type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxRetries int           `koanf:"max_retries"`
}

type WorkerConfig struct {
	Interval  time.Duration `koanf:"interval" validate:"required"`
	BatchSize int           `koanf:"batch_size" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// NewLogger builds the process-wide slog logger from the configured level.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(c.Format) == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	err := k.Load(confmap.Provider(map[string]interface{}{
		"primary.env":          "development",
		"server.port":          "8080",
		"server.read_timeout":  "15s",
		"server.write_timeout": "15s",
		"server.idle_timeout":  "60s",
		"logger.level":         "info",
		"logger.format":        "text",
		"mollie.auto_capture":  true,
		"mollie.environment":   "test",
		"mollie.conn_timeout":  "10s",
		"sumup.auto_capture":   true,
		"sumup.environment":    "test",
		"sumup.conn_timeout":   "10s",
		"retry.base_delay":     "1s",
		"retry.max_retries":    3,
		"worker.interval":      "30s",
		"worker.batch_size":    50,
	}, "."), nil)
	if err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err = k.Load(env.Provider("PAYGATE_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "PAYGATE_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
