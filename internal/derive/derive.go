// Package derive combines events and bookings snapshots into view state.
// Everything here is pure: callers pass snapshots in, nothing is cached.
package derive

import "github.com/s448/event-horizon/internal/domain"

// BookingWithEvent is one row of the inner join between a bookings snapshot
// and an events snapshot.
type BookingWithEvent struct {
	Booking domain.Booking
	Event   domain.Event
}

// EventRevenue is booking-derived: price times booking count. Payment status
// is deliberately not consulted, the payments table is never read back.
type EventRevenue struct {
	Event        domain.Event
	BookingCount int
	Revenue      float64
}

func HasPrincipalBooked(bookings []domain.Booking, eventID, principalID string) bool {
	for _, b := range bookings {
		if b.EventID == eventID && b.UserID == principalID {
			return true
		}
	}
	return false
}

// BookingsWithEventDetails joins bookings to their events by event id.
// Bookings whose event has been deleted are dropped silently: deleting an
// event does not cascade into bookings, and orphans are tolerated rather
// than reported.
func BookingsWithEventDetails(bookings []domain.Booking, events []domain.Event) []BookingWithEvent {
	byID := make(map[string]domain.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}

	joined := make([]BookingWithEvent, 0, len(bookings))
	for _, b := range bookings {
		event, ok := byID[b.EventID]
		if !ok {
			continue
		}
		joined = append(joined, BookingWithEvent{Booking: b, Event: event})
	}

	return joined
}

func RevenueByEvent(events []domain.Event, bookings []domain.Booking) []EventRevenue {
	counts := make(map[string]int, len(events))
	for _, b := range bookings {
		counts[b.EventID]++
	}

	report := make([]EventRevenue, 0, len(events))
	for _, e := range events {
		count := counts[e.ID]
		report = append(report, EventRevenue{
			Event:        e,
			BookingCount: count,
			Revenue:      e.Price * float64(count),
		})
	}

	return report
}
