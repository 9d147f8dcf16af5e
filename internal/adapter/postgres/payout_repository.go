package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"viewpay/internal/core/domain"
	"viewpay/internal/core/port"
)

// PayoutRepository implements port.PayoutRepository using pgxpool for
// PostgreSQL.
type PayoutRepository struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
	logger      *slog.Logger
}

// NewPayoutRepository returns a new repository instance. lockTimeout bounds
// LockCampaign; zero waits indefinitely.
func NewPayoutRepository(pool *pgxpool.Pool, lockTimeout time.Duration, logger *slog.Logger) *PayoutRepository {
	return &PayoutRepository{pool: pool, lockTimeout: lockTimeout, logger: logger}
}

const submissionColumns = `
            s.id,
            s.campaign_id,
            s.creator_id,
            s.asset_url,
            COALESCE(s.platform, ''),
            s.status::text,
            s.views,
            s.likes,
            s.comments,
            s.payout_amount,
            s.created_at,
            s.updated_at`

// ListPayableSubmissions returns approved submissions of active or
// allow-listed campaigns without an unresolved discrepancy.
func (r *PayoutRepository) ListPayableSubmissions(ctx context.Context, legacy []uuid.UUID) ([]domain.Submission, error) {
	query := `
        SELECT` + submissionColumns + `
        FROM submissions s
        JOIN campaigns c ON c.id = s.campaign_id
        WHERE s.status = 'approved'
          AND (c.status = 'active'
               OR (c.id = ANY($1) AND c.status NOT IN ('completed', 'expired')))
          AND NOT EXISTS (
              SELECT 1 FROM payout_discrepancies d
              WHERE d.submission_id = s.id AND d.resolved_at IS NULL)
        ORDER BY s.created_at, s.id`
	if legacy == nil {
		legacy = []uuid.UUID{}
	}
	rows, err := r.db(ctx).Query(ctx, query, legacy)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSubmission)
}

// GetSubmission returns a submission by id, or nil when it does not exist.
func (r *PayoutRepository) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT`+submissionColumns+` FROM submissions s WHERE s.id = $1`, id)
	if err != nil {
		return nil, err
	}
	sub, err := pgx.CollectExactlyOneRow(rows, scanSubmission)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetCampaign returns a campaign by id, or nil when it does not exist.
func (r *PayoutRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var (
		c           domain.Campaign
		status      string
		breakpoints []string
	)
	err := r.db(ctx).QueryRow(ctx, `
        SELECT
            id,
            title,
            rate_per_1000_views,
            budget,
            total_paid,
            status::text,
            COALESCE(budget_breakpoints, '{}')::text[],
            current_breakpoint_index,
            payout_min_per_submission,
            payout_max_per_submission,
            start_date,
            end_date,
            created_at,
            updated_at
        FROM campaigns
        WHERE id = $1`, id).Scan(
		&c.ID,
		&c.Title,
		&c.RatePer1000Views,
		&c.Budget,
		&c.TotalPaid,
		&status,
		&breakpoints,
		&c.CurrentBreakpointIndex,
		&c.PayoutMinPerSubmission,
		&c.PayoutMaxPerSubmission,
		&c.StartDate,
		&c.EndDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Status = domain.CampaignStatus(status)
	if c.BudgetBreakpoints, err = parseBreakpoints(breakpoints); err != nil {
		return nil, fmt.Errorf("campaign %s: %w", id, err)
	}
	return &c, nil
}

// GetPayoutAccount returns the creator's connected account, or nil.
func (r *PayoutRepository) GetPayoutAccount(ctx context.Context, creatorID uuid.UUID) (*domain.PayoutAccount, error) {
	var a domain.PayoutAccount
	err := r.db(ctx).QueryRow(ctx, `
        SELECT creator_id, COALESCE(stripe_connect_id, ''), stripe_connect_onboarded
        FROM creator_payout_accounts
        WHERE creator_id = $1`, creatorID).Scan(&a.CreatorID, &a.DestinationAccount, &a.Onboarded)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// LockCampaign takes a session-level advisory lock keyed by the campaign id
// on a dedicated connection. The returned context routes the repository's
// queries to that connection until the release func runs.
func (r *PayoutRepository) LockCampaign(ctx context.Context, campaignID uuid.UUID) (context.Context, func(), error) {
	lockCtx := ctx
	if r.lockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, r.lockTimeout)
		defer cancel()
	}

	key := campaignID.String()
	conn, err := r.pool.Acquire(lockCtx)
	if err != nil {
		return nil, nil, r.lockError(lockCtx, campaignID, "acquire connection", err)
	}
	if _, err = conn.Exec(lockCtx, `SELECT pg_advisory_lock(hashtextextended($1, 0))`, key); err != nil {
		// the lock may have been granted before the wait was cancelled
		_ = conn.Conn().Close(context.Background())
		conn.Release()
		return nil, nil, r.lockError(lockCtx, campaignID, "advisory lock", err)
	}

	s := &session{conn: conn}
	release := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.released {
			return
		}
		s.released = true

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := conn.Exec(ctx, `SELECT pg_advisory_unlock(hashtextextended($1, 0))`, key); err != nil {
			// closing the session drops the lock
			r.logger.Warn("advisory unlock failed", slog.String("campaign_id", key), slog.Any("error", err))
			_ = conn.Conn().Close(ctx)
		}
		conn.Release()
	}
	return withSession(ctx, s), release, nil
}

func (r *PayoutRepository) lockError(lockCtx context.Context, campaignID uuid.UUID, step string, err error) error {
	if errors.Is(lockCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("campaign %s not locked within %s: %s: %w", campaignID, r.lockTimeout, step, err)
	}
	return fmt.Errorf("campaign %s: %s: %w", campaignID, step, err)
}

// CommitPayout applies a payout in one serializable transaction. The payment
// insert is keyed by the idempotency key; when the key already exists the
// payout was committed before and nothing else is written.
func (r *PayoutRepository) CommitPayout(ctx context.Context, c domain.PayoutCommit) (err error) {
	tx, err := r.db(ctx).BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	p := c.Payment
	tag, err := tx.Exec(ctx, `
        INSERT INTO payment_records
            (id, submission_id, campaign_id, creator_id, amount, units_paid, rate_per_unit,
             baseline_value, target_value, transfer_id, idempotency_key, destination, description, created_at)
        VALUES ($1, $2, $3, $4, $5::numeric, $6, $7::numeric, $8, $9, $10, $11, $12, $13, $14)
        ON CONFLICT (idempotency_key) DO NOTHING`,
		p.ID, p.SubmissionID, p.CampaignID, p.CreatorID, p.Amount.String(), p.UnitsPaid, p.RatePerUnit.String(),
		p.BaselineValue, p.TargetValue, p.TransferID, p.IdempotencyKey, p.Destination, p.Description, p.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert payment record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.Info("payout already committed", slog.String("idempotency_key", p.IdempotencyKey))
		return nil
	}

	if err = markPaid(ctx, tx, p.SubmissionID, p.TargetValue); err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, `
        UPDATE submissions
        SET payout_amount = payout_amount + $2::numeric, updated_at = now()
        WHERE id = $1`, p.SubmissionID, p.Amount.String()); err != nil {
		return fmt.Errorf("update submission payout: %w", err)
	}

	previous := c.NewTotalPaid.Sub(p.Amount)
	tag, err = tx.Exec(ctx, `
        UPDATE campaigns
        SET total_paid = $2::numeric,
            status = $3::campaign_status,
            current_breakpoint_index = $4,
            updated_at = now()
        WHERE id = $1 AND total_paid = $5::numeric`,
		p.CampaignID, c.NewTotalPaid.String(), string(c.NewStatus), c.NewBreakpointIndex, previous.String())
	if err != nil {
		return fmt.Errorf("update campaign totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %s total changed during payout", p.CampaignID)
	}
	return nil
}

// RecordDiscrepancy stores a transfer whose commit failed.
func (r *PayoutRepository) RecordDiscrepancy(ctx context.Context, d domain.Discrepancy) error {
	_, err := r.db(ctx).Exec(ctx, `
        INSERT INTO payout_discrepancies
            (id, submission_id, campaign_id, transfer_id, idempotency_key, amount, reason, created_at)
        VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8)`,
		d.ID, d.SubmissionID, d.CampaignID, d.TransferID, d.IdempotencyKey, d.Amount.String(), d.Reason, d.CreatedAt.UTC())
	return err
}

// HasOpenDiscrepancy reports whether an unresolved discrepancy exists.
func (r *PayoutRepository) HasOpenDiscrepancy(ctx context.Context, submissionID uuid.UUID) (bool, error) {
	var open bool
	err := r.db(ctx).QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM payout_discrepancies
            WHERE submission_id = $1 AND resolved_at IS NULL)`, submissionID).Scan(&open)
	return open, err
}

func scanSubmission(row pgx.CollectableRow) (domain.Submission, error) {
	var (
		s        domain.Submission
		platform string
		status   string
	)
	err := row.Scan(
		&s.ID,
		&s.CampaignID,
		&s.CreatorID,
		&s.AssetURL,
		&platform,
		&status,
		&s.Metrics.Views,
		&s.Metrics.Likes,
		&s.Metrics.Comments,
		&s.PayoutAmount,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	s.Platform = domain.Platform(platform)
	s.Status = domain.SubmissionStatus(status)
	return s, err
}

func parseBreakpoints(raw []string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, 0, len(raw))
	for _, v := range raw {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("parse breakpoint %q: %w", v, err)
		}
		out = append(out, d)
	}
	return out, nil
}

var _ port.PayoutRepository = (*PayoutRepository)(nil)
