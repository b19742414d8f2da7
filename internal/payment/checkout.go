package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/s448/event-horizon/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type ChargeResult struct {
	ID             string
	Succeeded      bool
	FailureMessage string
}

type Charger interface {
	Charge(amountMinor int64, currency, cardToken string) (*ChargeResult, error)
}

type recorder interface {
	Record(ctx context.Context, payment domain.Payment) error
}

const currency = "usd"

// Service runs checkout: charge the card, append a payment record either
// way. It does not create the booking; booking and payment are not atomic
// in this system, and the caller sequences the two.
type Service struct {
	charges  Charger
	payments recorder
	log      logger.Logger
}

func NewService(charges Charger, payments recorder, log logger.Logger) *Service {
	return &Service{
		charges:  charges,
		payments: payments,
		log:      log,
	}
}

func (s *Service) Checkout(ctx context.Context, event domain.Event, cardToken string) (domain.Payment, error) {
	payment := domain.Payment{
		ID:         uuid.New().String(),
		EventID:    event.ID,
		Amount:     event.Price,
		Status:     domain.PaymentStatusPending,
		OccurredAt: time.Now().UTC(),
	}

	amountMinor := int64(math.Round(event.Price * 100))
	result, err := s.charges.Charge(amountMinor, currency, cardToken)

	var chargeErr error
	switch {
	case err != nil:
		payment.Status = domain.PaymentStatusFailed
		chargeErr = fmt.Errorf("create charge: %w", err)
	case !result.Succeeded:
		payment.Status = domain.PaymentStatusFailed
		chargeErr = fmt.Errorf("charge declined: %s", result.FailureMessage)
	default:
		payment.Status = domain.PaymentStatusCompleted
	}

	// The ledger row is appended for failed charges too; it is the only
	// trace a declined checkout leaves.
	if recErr := s.payments.Record(ctx, payment); recErr != nil {
		s.log.Error("payment made but not recorded",
			logger.String("payment_id", payment.ID),
			logger.String("status", string(payment.Status)),
			logger.String("error", recErr.Error()),
		)
	}

	if chargeErr != nil {
		return payment, chargeErr
	}

	s.log.Info("checkout completed",
		logger.String("payment_id", payment.ID),
		logger.String("event_id", event.ID),
	)

	return payment, nil
}
