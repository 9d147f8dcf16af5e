package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"viewpay/internal/core/domain"
)

// handleRunPayouts runs one payout batch and returns its summary. Per-item
// failures are part of the summary; only a batch that could not start
// produces HTTP 500.
func (h *Handler) handleRunPayouts(w http.ResponseWriter, r *http.Request) {
	summary, err := h.payouts.RunPayouts(r.Context())
	if err != nil {
		h.logger.Error("payout run error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

// handleProcessSubmission runs one payout cycle for the submission in the
// path. Unknown ids give 404, unapproved submissions 422.
func (h *Handler) handleProcessSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid submission id")
		return
	}

	res, err := h.payouts.ProcessSubmissionByID(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, domain.ErrNotApproved):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		h.logger.Error("process submission error", slog.String("submission_id", id.String()), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleRunTracking(w http.ResponseWriter, r *http.Request) {
	summary, err := h.tracking.TrackAll(r.Context())
	if err != nil {
		h.logger.Error("engagement run error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}
