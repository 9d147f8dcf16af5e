package domain

import "errors"

var (
	// ErrConfiguration means a collaborator is missing credentials. Fatal at startup.
	ErrConfiguration = errors.New("configuration error")
	// ErrNotFound means a campaign or submission does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotApproved means the submission is not approved for payouts.
	ErrNotApproved = errors.New("submission not approved")
	// ErrExternalService wraps failures of the engagement or transfer collaborators.
	ErrExternalService = errors.New("external service error")
	// ErrPayoutAccountNotReady means the creator has not finished onboarding.
	ErrPayoutAccountNotReady = errors.New("payout account not onboarded")
	// ErrTransferRejected means the provider refused the transfer and no money moved.
	ErrTransferRejected = errors.New("transfer rejected")
	// ErrTransferOutcomeUnknown means the transfer call failed without saying
	// whether money moved.
	ErrTransferOutcomeUnknown = errors.New("transfer outcome unknown")
	// ErrPersistenceAfterTransfer means money moved but bookkeeping failed.
	ErrPersistenceAfterTransfer = errors.New("persistence failed after transfer")
	// ErrPayoutBlocked means an unresolved discrepancy exists for the submission.
	ErrPayoutBlocked = errors.New("payout blocked pending reconciliation")
)
