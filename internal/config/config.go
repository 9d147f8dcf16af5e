package config

import (
	"errors"

	"github.com/caarlos0/env/v11"

	"viewpay/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the ops HTTP server. Environment
	// variables prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Stripe     configs.Stripe     `envPrefix:"STRIPE_"`
	Payout     configs.Payout     `envPrefix:"PAYOUT_"`
	Engagement configs.Engagement `envPrefix:"ENGAGEMENT_"`
	Schedule   configs.Schedule   `envPrefix:"SCHEDULE_"`
	AMQP       configs.AMQP       `envPrefix:"AMQP_"`
	OTel       configs.OTel       `envPrefix:"OTEL_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ValidatePayouts checks the sections needed to move money.
func (c Config) ValidatePayouts() error {
	return errors.Join(c.Psql.Validate(), c.Stripe.Validate(), c.Payout.Validate())
}

// ValidateTracking checks the sections needed to refresh engagement.
func (c Config) ValidateTracking() error {
	return c.Engagement.Validate()
}
