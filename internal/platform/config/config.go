package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/bnema/gathering-relay/internal/version"
)

// Config is the process environment. Relay settings and communities live in
// the TOML config file read through viper; this covers what a deployment
// injects.
type Config struct {
	Env          string `env:"GATHERING_ENV" envDefault:"development"`
	ConfigPath   string `env:"GATHERING_CONFIG"`
	OpsAddr      string `env:"GATHERING_OPS_ADDR"`
	FeedURL      string `env:"GATHERING_FEED_URL"`
	DiscordToken string `env:"DISCORD_TOKEN"`
	FeedToken    string `env:"CC_TOKEN"`
	OTel         OTelConfig
}

type OTelConfig struct {
	Endpoint       string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Headers        string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName    string `env:"OTEL_SERVICE_NAME" envDefault:"gathering-relay"`
	ServiceVersion string `env:"OTEL_SERVICE_VERSION"`
}

// Load reads the environment. In development a .env file in the working
// directory is applied first when present.
func Load() (Config, error) {
	var probe struct {
		Env string `env:"GATHERING_ENV" envDefault:"development"`
	}
	if err := ParseEnv(&probe); err != nil {
		return Config{}, err
	}
	if probe.Env == "development" {
		_ = godotenv.Load(".env")
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.OTel.ServiceVersion == "" {
		cfg.OTel.ServiceVersion = version.Version
	}

	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}
