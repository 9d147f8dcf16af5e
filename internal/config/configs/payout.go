package configs

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"viewpay/internal/core/domain"
)

// Payout tunes the payout engine.
type Payout struct {
	// LegacyCampaignIDs keep paying in any non-terminal status.
	LegacyCampaignIDs []uuid.UUID   `env:"LEGACY_CAMPAIGN_IDS" envSeparator:","`
	CommitRetries     uint64        `env:"COMMIT_RETRIES" envDefault:"3"`
	CommitBackoff     time.Duration `env:"COMMIT_BACKOFF" envDefault:"500ms"`
}

// AllowList returns the legacy campaigns as a domain.AllowList.
func (c Payout) AllowList() domain.AllowList {
	return domain.NewAllowList(c.LegacyCampaignIDs...)
}

// Validate checks the retry settings.
func (c Payout) Validate() error {
	if c.CommitRetries > 10 {
		return fmt.Errorf("%w: PAYOUT_COMMIT_RETRIES must not exceed 10", domain.ErrConfiguration)
	}
	if c.CommitBackoff < 0 {
		return fmt.Errorf("%w: PAYOUT_COMMIT_BACKOFF must not be negative", domain.ErrConfiguration)
	}
	return nil
}
