package configs

import (
	"fmt"
	"time"

	"viewpay/internal/core/domain"
)

// Engagement configures the view-count lookup strategies. A strategy whose
// credentials are missing is left out of the chain.
type Engagement struct {
	YouTubeAPIKey  string `env:"YOUTUBE_API_KEY"`
	YouTubeBaseURL string `env:"YOUTUBE_BASE_URL" envDefault:"https://www.googleapis.com/youtube/v3"`
	TikwmBaseURL   string `env:"TIKWM_BASE_URL" envDefault:"https://www.tikwm.com"`
	ApifyToken     string `env:"APIFY_TOKEN"`
	ApifyBaseURL   string `env:"APIFY_BASE_URL" envDefault:"https://api.apify.com"`

	// Timeout bounds a single strategy attempt.
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"20s"`
	Retries      uint64        `env:"RETRIES" envDefault:"2"`
	RetryBackoff time.Duration `env:"RETRY_BACKOFF" envDefault:"2s"`
	// RatePerSecond is shared by all strategies.
	RatePerSecond float64 `env:"RATE_PER_SECOND" envDefault:"2"`
	Burst         int     `env:"BURST" envDefault:"1"`
}

// Validate checks the limiter and timeout settings.
func (c Engagement) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: ENGAGEMENT_TIMEOUT must be positive", domain.ErrConfiguration)
	}
	if c.RatePerSecond <= 0 || c.Burst < 1 {
		return fmt.Errorf("%w: ENGAGEMENT_RATE_PER_SECOND and ENGAGEMENT_BURST must be positive", domain.ErrConfiguration)
	}
	return nil
}
