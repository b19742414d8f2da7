package store

import (
	"context"
	"fmt"

	"github.com/s448/event-horizon/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const paymentsTable = "payments"

// Payments is append-only. Rows are recorded as a checkout side effect and
// never read back, so there is no mirror and no subscription.
type Payments struct {
	client tableClient
	log    logger.Logger
}

func NewPayments(client tableClient, log logger.Logger) *Payments {
	return &Payments{client: client, log: log}
}

func (p *Payments) Record(ctx context.Context, payment domain.Payment) error {
	if _, err := p.client.Insert(ctx, paymentsTable, paymentToRow(payment)); err != nil {
		return fmt.Errorf("record payment: %w", err)
	}

	p.log.Info("payment recorded",
		logger.String("payment_id", payment.ID),
		logger.String("event_id", payment.EventID),
		logger.String("status", string(payment.Status)),
	)

	return nil
}
