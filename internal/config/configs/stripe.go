package configs

import (
	"fmt"
	"time"

	"viewpay/internal/core/domain"
)

// Stripe configures the transfer collaborator.
type Stripe struct {
	SecretKey string        `env:"SECRET_KEY"`
	Currency  string        `env:"CURRENCY" envDefault:"usd"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// APIBase overrides the Stripe API endpoint, e.g. for stripe-mock.
	APIBase string `env:"API_BASE"`
}

// Validate reports missing credentials.
func (c Stripe) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("%w: STRIPE_SECRET_KEY is required", domain.ErrConfiguration)
	}
	if len(c.Currency) != 3 {
		return fmt.Errorf("%w: STRIPE_CURRENCY must be an ISO currency code", domain.ErrConfiguration)
	}
	return nil
}
