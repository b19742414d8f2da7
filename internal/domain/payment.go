package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusPending   PaymentStatus = "pending"
)

// Payment is write-mostly: rows are appended as a side effect of checkout and
// never read back into a local mirror.
type Payment struct {
	ID         string        `json:"id"`
	EventID    string        `json:"event_id,omitempty"`
	Amount     float64       `json:"amount"`
	Status     PaymentStatus `json:"status"`
	OccurredAt time.Time     `json:"date"`
}
