package domain

import "time"

// Booking ties one principal to one event. At most one active booking should
// exist per (EventID, UserID) pair; the bookings store pre-checks this before
// touching the remote table.
type Booking struct {
	ID       string    `json:"id"`
	EventID  string    `json:"event_id"`
	UserID   string    `json:"user_id"`
	BookedAt time.Time `json:"booking_date"`
}
