package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"

	"viewpay/internal/config/configs"
	"viewpay/internal/core/domain"
	"viewpay/internal/core/port"
)

// Routing keys on the events exchange.
const (
	KeyPayoutCompleted       = "payout.completed"
	KeyCampaignStatusChanged = "campaign.status_changed"
	KeyPayoutDiscrepancy     = "payout.discrepancy"
)

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher sends engine events as JSON to a durable topic exchange.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	ch       channel
	exchange string
	logger   *slog.Logger
}

func sanitizeURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	if u.Path == "" {
		clean += "/"
	}
	return clean, nil
}

// Dial connects to the broker and declares the exchange.
func Dial(cfg configs.AMQP, logger *slog.Logger) (*Publisher, error) {
	cleanURL, err := sanitizeURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: AMQP_URL: %v", domain.ErrConfiguration, err)
	}
	conn, err := amqp091.Dial(cleanURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p, err := newPublisher(ch, cfg.Exchange, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange string, logger *slog.Logger) (*Publisher, error) {
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}
	return &Publisher{ch: ch, exchange: exchange, logger: logger}, nil
}

type discrepancyEvent struct {
	ID             uuid.UUID       `json:"id"`
	SubmissionID   uuid.UUID       `json:"submission_id"`
	CampaignID     uuid.UUID       `json:"campaign_id"`
	TransferID     string          `json:"transfer_id"`
	IdempotencyKey string          `json:"idempotency_key"`
	Amount         decimal.Decimal `json:"amount"`
	Reason         string          `json:"reason"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (p *Publisher) PublishPayoutCompleted(ctx context.Context, e port.PayoutEvent) error {
	return p.publish(ctx, KeyPayoutCompleted, e.SubmissionID.String(), e)
}

func (p *Publisher) PublishCampaignStatusChanged(ctx context.Context, e port.CampaignStatusEvent) error {
	return p.publish(ctx, KeyCampaignStatusChanged, e.CampaignID.String(), e)
}

func (p *Publisher) PublishDiscrepancy(ctx context.Context, d domain.Discrepancy) error {
	return p.publish(ctx, KeyPayoutDiscrepancy, d.ID.String(), discrepancyEvent{
		ID:             d.ID,
		SubmissionID:   d.SubmissionID,
		CampaignID:     d.CampaignID,
		TransferID:     d.TransferID,
		IdempotencyKey: d.IdempotencyKey,
		Amount:         d.Amount,
		Reason:         d.Reason,
		CreatedAt:      d.CreatedAt,
	})
}

func (p *Publisher) publish(ctx context.Context, routingKey, messageID string, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s: %w", routingKey, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    messageID,
		Timestamp:    time.Now().UTC(),
		Body:         raw,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	p.logger.Debug("event published", slog.String("routing_key", routingKey), slog.String("message_id", messageID))
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

var _ port.EventPublisher = (*Publisher)(nil)
