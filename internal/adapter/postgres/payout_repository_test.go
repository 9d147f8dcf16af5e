package postgres

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewpay/internal/core/domain"
	"viewpay/internal/db"
)

func TestParseBreakpoints(t *testing.T) {
	got, err := parseBreakpoints([]string{"1000.00", "2500.5"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(decimal.NewFromInt(1000)))
	assert.True(t, got[1].Equal(decimal.RequireFromString("2500.50")))

	got, err = parseBreakpoints(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseBreakpoints([]string{"abc"})
	assert.ErrorContains(t, err, `"abc"`)
}

// testPool connects to VIEWPAY_TEST_DATABASE_URL after rebuilding the schema.
// The database is wiped.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	return testPoolSized(t, 0)
}

// testPoolSized is testPool with MaxConns set when maxConns is positive.
func testPoolSized(t *testing.T, maxConns int32) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("VIEWPAY_TEST_DATABASE_URL")
	if addr == "" {
		t.Skip("VIEWPAY_TEST_DATABASE_URL not set")
	}
	require.NoError(t, db.Rollback(addr))
	require.NoError(t, db.Migrate(addr))

	cfg, err := pgxpool.ParseConfig(addr)
	require.NoError(t, err)
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	campaignID   uuid.UUID
	creatorID    uuid.UUID
	submissionID uuid.UUID
}

func insertFixture(t *testing.T, pool *pgxpool.Pool) fixture {
	t.Helper()
	ctx := context.Background()
	f := fixture{campaignID: uuid.New(), creatorID: uuid.New(), submissionID: uuid.New()}

	_, err := pool.Exec(ctx, `
        INSERT INTO campaigns (id, title, rate_per_1000_views, budget, status, budget_breakpoints, start_date)
        VALUES ($1, 'test', 5, 100, 'active', '{40,80}', now())`, f.campaignID)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `
        INSERT INTO creator_payout_accounts (creator_id, stripe_connect_id, stripe_connect_onboarded)
        VALUES ($1, 'acct_test', TRUE)`, f.creatorID)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `
        INSERT INTO submissions (id, campaign_id, creator_id, asset_url, platform, status)
        VALUES ($1, $2, $3, 'https://www.tiktok.com/@a/video/1', 'tiktok', 'approved')`,
		f.submissionID, f.campaignID, f.creatorID)
	require.NoError(t, err)
	return f
}

func TestRepository_LedgerAndCommit(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	f := insertFixture(t, pool)
	payouts := NewPayoutRepository(pool, 30*time.Second, discardLogger())
	engagement := NewEngagementRepository(pool)

	require.NoError(t, engagement.AppendEngagement(ctx, f.submissionID, domain.Metrics{Views: domain.Known(1000), Likes: domain.Known(3)}))
	// not above the ledger maximum
	require.NoError(t, engagement.AppendEngagement(ctx, f.submissionID, domain.Metrics{Views: domain.Known(900)}))
	require.NoError(t, engagement.AppendEngagement(ctx, f.submissionID, domain.Metrics{Views: domain.Known(4000)}))

	sub, err := payouts.GetSubmission(ctx, f.submissionID)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, domain.Known(4000), sub.Metrics.Views)
	assert.Equal(t, domain.Known(3), sub.Metrics.Likes)

	camp, err := payouts.GetCampaign(ctx, f.campaignID)
	require.NoError(t, err)
	require.NotNil(t, camp)
	assert.Equal(t, domain.StatusActive, camp.Status)
	assert.Len(t, camp.BudgetBreakpoints, 2)
	assert.False(t, camp.PayoutMaxPerSubmission.Valid)

	acct, err := payouts.GetPayoutAccount(ctx, f.creatorID)
	require.NoError(t, err)
	assert.True(t, acct.Ready())

	baseline, err := payouts.Baseline(ctx, f.submissionID)
	require.NoError(t, err)
	assert.Zero(t, baseline)
	target, ok, err := payouts.HighestUnpaid(ctx, f.submissionID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 4000, target)

	// a record appended after pricing must stay unpaid
	require.NoError(t, engagement.AppendEngagement(ctx, f.submissionID, domain.Metrics{Views: domain.Known(5000)}))

	commit := domain.PayoutCommit{
		Payment: domain.PaymentRecord{
			ID:             uuid.New(),
			SubmissionID:   f.submissionID,
			CampaignID:     f.campaignID,
			CreatorID:      f.creatorID,
			Amount:         decimal.NewFromInt(20),
			UnitsPaid:      4000,
			RatePerUnit:    decimal.RequireFromString("0.005"),
			TargetValue:    4000,
			TransferID:     "tr_1",
			IdempotencyKey: "key-1",
			Destination:    "acct_test",
			Description:    "test payout",
			CreatedAt:      time.Now(),
		},
		NewTotalPaid: decimal.NewFromInt(20),
		NewStatus:    domain.StatusActive,
	}
	require.NoError(t, payouts.CommitPayout(ctx, commit))
	// replaying the same key is a no-op
	require.NoError(t, payouts.CommitPayout(ctx, commit))

	baseline, err = payouts.Baseline(ctx, f.submissionID)
	require.NoError(t, err)
	assert.EqualValues(t, 4000, baseline)
	target, ok, err = payouts.HighestUnpaid(ctx, f.submissionID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 5000, target)

	camp, err = payouts.GetCampaign(ctx, f.campaignID)
	require.NoError(t, err)
	assert.True(t, camp.TotalPaid.Equal(decimal.NewFromInt(20)))
	sub, err = payouts.GetSubmission(ctx, f.submissionID)
	require.NoError(t, err)
	assert.True(t, sub.PayoutAmount.Equal(decimal.NewFromInt(20)))

	// a stale previous total is refused
	stale := commit
	stale.Payment.ID, stale.Payment.IdempotencyKey = uuid.New(), "key-2"
	assert.Error(t, payouts.CommitPayout(ctx, stale))

	listed, err := payouts.ListPayableSubmissions(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	require.NoError(t, payouts.RecordDiscrepancy(ctx, domain.Discrepancy{
		ID:             uuid.New(),
		SubmissionID:   f.submissionID,
		CampaignID:     f.campaignID,
		TransferID:     "tr_2",
		IdempotencyKey: "key-3",
		Amount:         decimal.NewFromInt(5),
		Reason:         "commit failed",
		CreatedAt:      time.Now(),
	}))
	open, err := payouts.HasOpenDiscrepancy(ctx, f.submissionID)
	require.NoError(t, err)
	assert.True(t, open)
	listed, err = payouts.ListPayableSubmissions(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestRepository_LockCampaignSerializes(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	payouts := NewPayoutRepository(pool, 30*time.Second, discardLogger())
	id := uuid.New()

	_, release, err := payouts.LockCampaign(ctx, id)
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		_, second, err := payouts.LockCampaign(ctx, id)
		if assert.NoError(t, err) {
			close(acquired)
			second()
		}
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while the first was held")
	case <-time.After(200 * time.Millisecond):
	}
	release()
	select {
	case <-acquired:
	case <-time.After(5 * time.Second):
		t.Fatal("second lock not acquired after release")
	}
}

func TestRepository_LockCampaignTimesOut(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	payouts := NewPayoutRepository(pool, 300*time.Millisecond, discardLogger())
	id := uuid.New()

	_, release, err := payouts.LockCampaign(ctx, id)
	require.NoError(t, err)
	defer release()

	start := time.Now()
	_, _, err = payouts.LockCampaign(ctx, id)
	require.Error(t, err)
	assert.ErrorContains(t, err, "not locked within")
	assert.Less(t, time.Since(start), 5*time.Second)

	// the failed attempt left no lock behind on another session
	release()
	_, again, err := payouts.LockCampaign(ctx, id)
	require.NoError(t, err)
	again()
}

func TestRepository_LockedCycleOnSingleConnection(t *testing.T) {
	pool := testPoolSized(t, 1)
	f := insertFixture(t, pool)
	payouts := NewPayoutRepository(pool, 2*time.Second, discardLogger())
	require.NoError(t, NewEngagementRepository(pool).AppendEngagement(context.Background(), f.submissionID, domain.Metrics{Views: domain.Known(2000)}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	locked, release, err := payouts.LockCampaign(ctx, f.campaignID)
	require.NoError(t, err)

	camp, err := payouts.GetCampaign(locked, f.campaignID)
	require.NoError(t, err)
	require.NotNil(t, camp)
	acct, err := payouts.GetPayoutAccount(locked, f.creatorID)
	require.NoError(t, err)
	require.NotNil(t, acct)
	baseline, err := payouts.Baseline(locked, f.submissionID)
	require.NoError(t, err)
	target, ok, err := payouts.HighestUnpaid(locked, f.submissionID)
	require.NoError(t, err)
	require.True(t, ok)
	open, err := payouts.HasOpenDiscrepancy(locked, f.submissionID)
	require.NoError(t, err)
	assert.False(t, open)

	require.NoError(t, payouts.CommitPayout(context.WithoutCancel(locked), domain.PayoutCommit{
		Payment: domain.PaymentRecord{
			ID:             uuid.New(),
			SubmissionID:   f.submissionID,
			CampaignID:     f.campaignID,
			CreatorID:      f.creatorID,
			Amount:         decimal.NewFromInt(10),
			UnitsPaid:      target - baseline,
			RatePerUnit:    decimal.RequireFromString("0.005"),
			BaselineValue:  baseline,
			TargetValue:    target,
			TransferID:     "tr_single",
			IdempotencyKey: "key-single",
			Destination:    "acct_test",
			CreatedAt:      time.Now(),
		},
		NewTotalPaid: decimal.NewFromInt(10),
		NewStatus:    domain.StatusActive,
	}))
	release()

	// the only connection is back in the pool
	camp, err = payouts.GetCampaign(ctx, f.campaignID)
	require.NoError(t, err)
	assert.True(t, camp.TotalPaid.Equal(decimal.NewFromInt(10)))
}
