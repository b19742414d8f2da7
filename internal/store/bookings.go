package store

import (
	"context"
	"time"

	"github.com/s448/event-horizon/internal/domain"
	"github.com/s448/event-horizon/internal/gateway"
	"github.com/wb-go/wbf/logger"
)

const bookingsTable = "bookings"

// Bookings mirrors the bookings table scoped to the current principal. While
// anonymous the mirror is empty and mutations are rejected locally.
type Bookings struct {
	*collection[domain.Booking]
	sessions sessionSource
}

func NewBookings(client tableClient, sessions sessionSource, log logger.Logger) *Bookings {
	s := &Bookings{sessions: sessions}
	s.collection = &collection[domain.Booking]{
		table:     bookingsTable,
		client:    client,
		log:       log,
		decodeAll: decodeBookings,
		decodeOne: decodeBooking,
		idOf:      func(b domain.Booking) string { return b.ID },
		scope: func() ([]gateway.Filter, bool) {
			principal, ok := sessions.Principal()
			if !ok {
				return nil, false
			}
			return []gateway.Filter{gateway.Eq("userid", principal.ID)}, true
		},
	}
	return s
}

// OnPrincipalChange rebinds the store to the new principal: the old
// subscription and mirror go away synchronously, then a fresh scoped
// subscription and snapshot are set up if someone is signed in. Wire this to
// the session manager's change feed.
func (s *Bookings) OnPrincipalChange(ctx context.Context, principal *domain.Principal) {
	s.Stop()
	s.clear()

	if principal == nil {
		return
	}

	if err := s.Start(ctx); err != nil {
		s.log.Warn("rebinding bookings to principal failed",
			logger.String("user_id", principal.ID),
			logger.String("error", err.Error()),
		)
	}
}

// Create books the given event for the current principal. The duplicate
// pre-check runs against the local mirror and fails fast without a remote
// round-trip; it is a convenience guard, not an atomic guarantee.
func (s *Bookings) Create(ctx context.Context, eventID string) (domain.Booking, error) {
	principal, ok := s.sessions.Principal()
	if !ok {
		return domain.Booking{}, domain.ErrNotAuthenticated
	}

	if s.hasBooking(eventID, principal.ID) {
		return domain.Booking{}, domain.ErrAlreadyBooked
	}

	row := bookingRow{
		EventID:     eventID,
		UserID:      principal.ID,
		BookingDate: time.Now().UTC(),
	}

	return s.create(ctx, row)
}

// Cancel deletes the booking. The remote predicate constrains by the current
// principal's id as well, so a guessed booking id belonging to someone else
// deletes nothing.
func (s *Bookings) Cancel(ctx context.Context, id string) error {
	principal, ok := s.sessions.Principal()
	if !ok {
		return domain.ErrNotAuthenticated
	}

	return s.remove(ctx, id, gateway.Eq("userid", principal.ID))
}

func (s *Bookings) hasBooking(eventID, userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.items {
		if b.EventID == eventID && b.UserID == userID {
			return true
		}
	}
	return false
}
