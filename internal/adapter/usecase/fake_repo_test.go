package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"viewpay/internal/core/domain"
	"viewpay/internal/core/port"
)

// memRepo is an in-memory PayoutRepository that applies commits atomically,
// the way the postgres repository does inside one transaction.
type memRepo struct {
	mu            sync.Mutex
	campaigns     map[uuid.UUID]domain.Campaign
	submissions   map[uuid.UUID]domain.Submission
	order         []uuid.UUID
	accounts      map[uuid.UUID]domain.PayoutAccount
	records       map[uuid.UUID][]domain.EngagementRecord
	payments      map[string]domain.PaymentRecord
	discrepancies []domain.Discrepancy

	// commitErrs are returned by successive CommitPayout calls before any
	// commit succeeds.
	commitErrs    []error
	commitAttempt int

	locksMu sync.Mutex
	locks   map[uuid.UUID]*sync.Mutex
	// unlocked counts lock-scoped calls made without the context returned
	// by LockCampaign.
	unlocked int
}

type memSessionKey struct{}

// scoped notes a lock-scoped call. The caller holds r.mu.
func (r *memRepo) scoped(ctx context.Context) {
	if ctx.Value(memSessionKey{}) == nil {
		r.unlocked++
	}
}

func (r *memRepo) unlockedCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unlocked
}

func newMemRepo() *memRepo {
	return &memRepo{
		campaigns:   make(map[uuid.UUID]domain.Campaign),
		submissions: make(map[uuid.UUID]domain.Submission),
		accounts:    make(map[uuid.UUID]domain.PayoutAccount),
		records:     make(map[uuid.UUID][]domain.EngagementRecord),
		payments:    make(map[string]domain.PaymentRecord),
		locks:       make(map[uuid.UUID]*sync.Mutex),
	}
}

func (r *memRepo) addCampaign(c domain.Campaign) domain.Campaign {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.campaigns[c.ID] = c
	return c
}

// addSubmission registers an approved submission whose creator has a ready
// payout account.
func (r *memRepo) addSubmission(campaignID uuid.UUID) domain.Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := domain.Submission{
		ID:         uuid.New(),
		CampaignID: campaignID,
		CreatorID:  uuid.New(),
		AssetURL:   "https://www.tiktok.com/@creator/video/1",
		Platform:   domain.PlatformTikTok,
		Status:     domain.SubmissionApproved,
	}
	r.submissions[s.ID] = s
	r.order = append(r.order, s.ID)
	r.accounts[s.CreatorID] = domain.PayoutAccount{
		CreatorID:          s.CreatorID,
		DestinationAccount: "acct_" + s.CreatorID.String()[:8],
		Onboarded:          true,
	}
	return s
}

func (r *memRepo) appendViews(submissionID uuid.UUID, views ...int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range views {
		r.records[submissionID] = append(r.records[submissionID], domain.EngagementRecord{
			ID:           uuid.New(),
			SubmissionID: submissionID,
			Views:        v,
		})
	}
}

func (r *memRepo) campaign(id uuid.UUID) domain.Campaign {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.campaigns[id]
}

func (r *memRepo) submission(id uuid.UUID) domain.Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.submissions[id]
}

func (r *memRepo) unpaidViews(submissionID uuid.UUID) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []int64
	for _, rec := range r.records[submissionID] {
		if !rec.Paid {
			out = append(out, rec.Views)
		}
	}
	return out
}

func (r *memRepo) ListPayableSubmissions(_ context.Context, legacy []uuid.UUID) ([]domain.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	allowed := domain.NewAllowList(legacy...)
	var out []domain.Submission
	for _, id := range r.order {
		s := r.submissions[id]
		c := r.campaigns[s.CampaignID]
		if s.Status != domain.SubmissionApproved || r.openDiscrepancy(id) {
			continue
		}
		if c.Status == domain.StatusActive || (allowed.Contains(c.ID) && !c.Status.Terminal()) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memRepo) GetSubmission(_ context.Context, id uuid.UUID) (*domain.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.submissions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *memRepo) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scoped(ctx)
	c, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memRepo) GetPayoutAccount(ctx context.Context, creatorID uuid.UUID) (*domain.PayoutAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scoped(ctx)
	a, ok := r.accounts[creatorID]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memRepo) LockCampaign(ctx context.Context, campaignID uuid.UUID) (context.Context, func(), error) {
	r.locksMu.Lock()
	l, ok := r.locks[campaignID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[campaignID] = l
	}
	r.locksMu.Unlock()
	l.Lock()
	return context.WithValue(ctx, memSessionKey{}, campaignID), l.Unlock, nil
}

func (r *memRepo) Baseline(ctx context.Context, submissionID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scoped(ctx)
	var best int64
	for _, rec := range r.records[submissionID] {
		if rec.Paid && rec.Views > best {
			best = rec.Views
		}
	}
	return best, nil
}

func (r *memRepo) HighestUnpaid(ctx context.Context, submissionID uuid.UUID) (int64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scoped(ctx)
	var (
		best  int64
		found bool
	)
	for _, rec := range r.records[submissionID] {
		if !rec.Paid && (!found || rec.Views > best) {
			best, found = rec.Views, true
		}
	}
	return best, found, nil
}

func (r *memRepo) CommitPayout(ctx context.Context, c domain.PayoutCommit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scoped(ctx)
	r.commitAttempt++
	if len(r.commitErrs) > 0 {
		err := r.commitErrs[0]
		r.commitErrs = r.commitErrs[1:]
		return err
	}
	p := c.Payment
	if _, ok := r.payments[p.IdempotencyKey]; ok {
		return nil
	}
	s, ok := r.submissions[p.SubmissionID]
	if !ok {
		return fmt.Errorf("submission %s: %w", p.SubmissionID, domain.ErrNotFound)
	}
	camp, ok := r.campaigns[p.CampaignID]
	if !ok {
		return fmt.Errorf("campaign %s: %w", p.CampaignID, domain.ErrNotFound)
	}
	if !camp.TotalPaid.Equal(c.NewTotalPaid.Sub(p.Amount)) {
		return fmt.Errorf("campaign %s total changed during payout", p.CampaignID)
	}

	r.payments[p.IdempotencyKey] = p
	recs := r.records[p.SubmissionID]
	for i := range recs {
		if !recs[i].Paid && recs[i].Views <= p.TargetValue {
			recs[i].Paid = true
		}
	}
	s.PayoutAmount = s.PayoutAmount.Add(p.Amount)
	r.submissions[s.ID] = s
	camp.TotalPaid = c.NewTotalPaid
	camp.Status = c.NewStatus
	camp.CurrentBreakpointIndex = c.NewBreakpointIndex
	r.campaigns[camp.ID] = camp
	return nil
}

func (r *memRepo) RecordDiscrepancy(ctx context.Context, d domain.Discrepancy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scoped(ctx)
	r.discrepancies = append(r.discrepancies, d)
	return nil
}

func (r *memRepo) HasOpenDiscrepancy(ctx context.Context, submissionID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scoped(ctx)
	return r.openDiscrepancy(submissionID), nil
}

func (r *memRepo) openDiscrepancy(submissionID uuid.UUID) bool {
	for _, d := range r.discrepancies {
		if d.SubmissionID == submissionID {
			return true
		}
	}
	return false
}

// memTransferer records transfer requests and hands out sequential ids.
type memTransferer struct {
	mu    sync.Mutex
	calls []port.TransferRequest
	err   error
	// during runs inside Transfer, after the watermarks were read.
	during func(req port.TransferRequest)
}

func (m *memTransferer) Transfer(ctx context.Context, req port.TransferRequest) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	n := len(m.calls)
	during, err := m.during, m.err
	m.mu.Unlock()
	if during != nil {
		during(req)
	}
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("tr_%03d", n), nil
}

func (m *memTransferer) requests() []port.TransferRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]port.TransferRequest(nil), m.calls...)
}

var (
	_ port.PayoutRepository = (*memRepo)(nil)
	_ port.Transferer       = (*memTransferer)(nil)
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
