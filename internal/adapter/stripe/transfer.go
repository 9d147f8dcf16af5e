package stripe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	stripeapi "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"viewpay/internal/config/configs"
	"viewpay/internal/core/domain"
	"viewpay/internal/core/port"
)

type transferAPI interface {
	New(params *stripeapi.TransferParams) (*stripeapi.Transfer, error)
}

// TransferClient sends Stripe Connect transfers to creator accounts. It
// implements port.Transferer. Network retries are disabled: a transfer is
// attempted once and the idempotency key guards replays.
type TransferClient struct {
	transfers transferAPI
}

// NewTransferClient builds a client from configuration. It fails with
// domain.ErrConfiguration when the secret key is missing.
func NewTransferClient(cfg configs.Stripe, logger *slog.Logger) (*TransferClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	backendCfg := &stripeapi.BackendConfig{
		HTTPClient:        &http.Client{Timeout: cfg.Timeout},
		MaxNetworkRetries: stripeapi.Int64(0),
		LeveledLogger:     &leveledLogger{logger: logger},
	}
	if cfg.APIBase != "" {
		backendCfg.URL = stripeapi.String(cfg.APIBase)
	}
	sc := client.New(cfg.SecretKey, &stripeapi.Backends{
		API:     stripeapi.GetBackendWithConfig(stripeapi.APIBackend, backendCfg),
		Connect: stripeapi.GetBackendWithConfig(stripeapi.ConnectBackend, backendCfg),
		Uploads: stripeapi.GetBackendWithConfig(stripeapi.UploadsBackend, backendCfg),
	})
	return &TransferClient{transfers: sc.Transfers}, nil
}

// Transfer creates one transfer and returns its id.
func (c *TransferClient) Transfer(ctx context.Context, req port.TransferRequest) (string, error) {
	if req.AmountMinor <= 0 {
		return "", fmt.Errorf("%w: transfer amount must be positive, got %d", domain.ErrTransferRejected, req.AmountMinor)
	}
	params := &stripeapi.TransferParams{
		Amount:      stripeapi.Int64(req.AmountMinor),
		Currency:    stripeapi.String(req.Currency),
		Destination: stripeapi.String(req.Destination),
		Description: stripeapi.String(req.Description),
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	tr, err := c.transfers.New(params)
	if err != nil {
		if rejected(err) {
			return "", fmt.Errorf("%w: %w: stripe transfer: %s", domain.ErrExternalService, domain.ErrTransferRejected, describe(err))
		}
		return "", fmt.Errorf("%w: stripe transfer: %s", domain.ErrExternalService, describe(err))
	}
	return tr.ID, nil
}

// rejected reports whether Stripe refused the request without creating a
// transfer. Conflicts and idempotency errors may refer to an earlier request
// that did succeed.
func rejected(err error) bool {
	var se *stripeapi.Error
	if !errors.As(err, &se) {
		return false
	}
	if se.Type == stripeapi.ErrorTypeIdempotency || se.HTTPStatusCode == http.StatusConflict {
		return false
	}
	return se.HTTPStatusCode >= 400 && se.HTTPStatusCode < 500
}

func describe(err error) string {
	var se *stripeapi.Error
	if errors.As(err, &se) {
		return fmt.Sprintf("%s (status %d, code %s, request %s)", se.Msg, se.HTTPStatusCode, se.Code, se.RequestID)
	}
	return err.Error()
}

// leveledLogger routes stripe-go logs into slog.
type leveledLogger struct {
	logger *slog.Logger
}

func (l *leveledLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *leveledLogger) Infof(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *leveledLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *leveledLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

var _ port.Transferer = (*TransferClient)(nil)
