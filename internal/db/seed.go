package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// seedNamespace makes seeded ids stable so Seed can run more than once.
var seedNamespace = uuid.MustParse("6f1c1f0e-0d39-4c55-9d7a-3f0d4b2a9c11")

func seedID(format string, args ...any) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf(format, args...)))
}

type seedCampaign struct {
	title       string
	rate        string
	budget      string
	status      string
	breakpoints []string
	minPayout   *string
	maxPayout   *string
}

// Seed inserts demo campaigns, creators, submissions and ledger records.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	min5, max50 := "5.00", "50.00"

	campaigns := []seedCampaign{
		{title: "Spring sneaker drop", rate: "4.50", budget: "5000.00", status: "active", breakpoints: []string{"1000.00", "2500.00"}},
		{title: "Indie game launch", rate: "2.00", budget: "0", status: "active", minPayout: &min5, maxPayout: &max50},
		{title: "Energy drink summer", rate: "3.00", budget: "1500.00", status: "paused_by_admin"},
		{title: "Budget travel series", rate: "1.25", budget: "800.00", status: "funded_but_not_started"},
	}
	platforms := []struct {
		name string
		url  string
	}{
		{"tiktok", "https://www.tiktok.com/@creator%d/video/73%08d"},
		{"youtube", "https://www.youtube.com/watch?v=seed%07d%d"},
		{"instagram", "https://www.instagram.com/reel/Seed%d%06d/"},
	}

	for i, c := range campaigns {
		campaignID := seedID("campaign-%d", i)
		start := time.Now().AddDate(0, 0, -7)
		end := time.Now().AddDate(0, 1, 0)
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, title, rate_per_1000_views, budget, total_paid, status, budget_breakpoints,
     current_breakpoint_index, payout_min_per_submission, payout_max_per_submission,
     start_date, end_date, created_at, updated_at)
VALUES ($1, $2, $3::numeric, $4::numeric, 0, $5::campaign_status, $6::text[]::numeric[], 0,
        $7::numeric, $8::numeric, $9, $10, now(), now())
ON CONFLICT DO NOTHING`,
			campaignID, c.title, c.rate, c.budget, c.status, c.breakpoints, c.minPayout, c.maxPayout, start, end)
		if err != nil {
			return fmt.Errorf("seed campaign %q: %w", c.title, err)
		}

		for j := 0; j < 5; j++ {
			creatorID := seedID("creator-%d", j)
			onboarded := j != 4
			_, err = db.Exec(ctx, `INSERT INTO creator_payout_accounts
    (creator_id, stripe_connect_id, stripe_connect_onboarded, created_at, updated_at)
VALUES ($1, $2, $3, now(), now()) ON CONFLICT DO NOTHING`,
				creatorID, fmt.Sprintf("acct_seed%06d", j), onboarded)
			if err != nil {
				return fmt.Errorf("seed payout account: %w", err)
			}

			p := platforms[(i+j)%len(platforms)]
			submissionID := seedID("submission-%d-%d", i, j)
			status := "approved"
			if j == 3 {
				status = "pending"
			}
			_, err = db.Exec(ctx, `INSERT INTO submissions
    (id, campaign_id, creator_id, asset_url, platform, status, payout_amount, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6::submission_status, 0, now(), now()) ON CONFLICT DO NOTHING`,
				submissionID, campaignID, creatorID, fmt.Sprintf(p.url, j, i*100+j), p.name, status)
			if err != nil {
				return fmt.Errorf("seed submission: %w", err)
			}

			// a few increasing measurements per submission
			views := int64(0)
			for k := 0; k < 3; k++ {
				views += int64(500 + r.Intn(20000))
				_, err = db.Exec(ctx, `INSERT INTO engagement_records (id, submission_id, views, paid, tracked_at)
VALUES ($1, $2, $3, FALSE, $4) ON CONFLICT DO NOTHING`,
					seedID("record-%d-%d-%d", i, j, k), submissionID, views, time.Now().Add(time.Duration(k-3)*time.Hour))
				if err != nil {
					return fmt.Errorf("seed engagement record: %w", err)
				}
			}
			_, err = db.Exec(ctx, `UPDATE submissions SET views = $2 WHERE id = $1 AND views IS NULL`, submissionID, views)
			if err != nil {
				return fmt.Errorf("seed submission views: %w", err)
			}
		}
	}
	return nil
}
