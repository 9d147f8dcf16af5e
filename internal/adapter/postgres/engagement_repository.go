package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"viewpay/internal/core/domain"
	"viewpay/internal/core/port"
)

// EngagementRepository implements port.EngagementRepository.
type EngagementRepository struct {
	pool *pgxpool.Pool
}

// NewEngagementRepository returns a new repository instance.
func NewEngagementRepository(pool *pgxpool.Pool) *EngagementRepository {
	return &EngagementRepository{pool: pool}
}

// ListTrackableSubmissions returns approved submissions with a known
// platform whose campaign can still pay.
func (r *EngagementRepository) ListTrackableSubmissions(ctx context.Context) ([]domain.Submission, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT`+submissionColumns+`
        FROM submissions s
        JOIN campaigns c ON c.id = s.campaign_id
        WHERE s.status = 'approved'
          AND s.platform IS NOT NULL
          AND c.status NOT IN ('completed', 'expired')
        ORDER BY s.updated_at`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSubmission)
}

// AppendEngagement appends a ledger record and advances the submission's
// snapshot in one transaction. A view count that does not exceed the ledger
// maximum is ignored.
func (r *EngagementRepository) AppendEngagement(ctx context.Context, submissionID uuid.UUID, m domain.Metrics) (err error) {
	if !m.Views.Valid {
		return fmt.Errorf("append engagement for %s: views unknown", submissionID)
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
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

	// serialize appends per submission
	if _, err = tx.Exec(ctx, `SELECT 1 FROM submissions WHERE id = $1 FOR UPDATE`, submissionID); err != nil {
		return fmt.Errorf("lock submission: %w", err)
	}

	tag, err := tx.Exec(ctx, `
        INSERT INTO engagement_records (id, submission_id, views, paid, tracked_at)
        SELECT $1::uuid, $2::uuid, $3::bigint, FALSE, $4::timestamptz
        WHERE $3::bigint > COALESCE((SELECT MAX(views) FROM engagement_records WHERE submission_id = $2), -1)`,
		uuid.New(), submissionID, m.Views.Int64, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert engagement record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil
	}

	_, err = tx.Exec(ctx, `
        UPDATE submissions
        SET views = $2,
            likes = COALESCE($3, likes),
            comments = COALESCE($4, comments),
            updated_at = now()
        WHERE id = $1`, submissionID, m.Views.Int64, nullInt(m.Likes), nullInt(m.Comments))
	if err != nil {
		return fmt.Errorf("update submission metrics: %w", err)
	}
	return nil
}

func nullInt(v sql.NullInt64) any {
	if !v.Valid {
		return nil
	}
	return v.Int64
}

var _ port.EngagementRepository = (*EngagementRepository)(nil)
