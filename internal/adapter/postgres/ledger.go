package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Baseline returns the highest paid view count for a submission, zero when
// nothing was paid yet.
func (r *PayoutRepository) Baseline(ctx context.Context, submissionID uuid.UUID) (int64, error) {
	var views int64
	err := r.db(ctx).QueryRow(ctx, `
        SELECT COALESCE(MAX(views), 0)
        FROM engagement_records
        WHERE submission_id = $1 AND paid`, submissionID).Scan(&views)
	return views, err
}

// HighestUnpaid returns the highest unpaid view count for a submission.
func (r *PayoutRepository) HighestUnpaid(ctx context.Context, submissionID uuid.UUID) (int64, bool, error) {
	var views sql.NullInt64
	err := r.db(ctx).QueryRow(ctx, `
        SELECT MAX(views)
        FROM engagement_records
        WHERE submission_id = $1 AND NOT paid`, submissionID).Scan(&views)
	if err != nil {
		return 0, false, err
	}
	return views.Int64, views.Valid, nil
}

// markPaid flips unpaid records up to target. Records above target were
// appended after the payout was priced and stay unpaid.
func markPaid(ctx context.Context, tx pgx.Tx, submissionID uuid.UUID, target int64) error {
	_, err := tx.Exec(ctx, `
        UPDATE engagement_records
        SET paid = TRUE
        WHERE submission_id = $1 AND NOT paid AND views <= $2`, submissionID, target)
	if err != nil {
		return fmt.Errorf("mark ledger paid: %w", err)
	}
	return nil
}
