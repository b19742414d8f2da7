package store

import (
	"encoding/json"
	"time"

	"github.com/s448/event-horizon/internal/domain"
)

// The remote schema uses flat lowercase column names (imageurl, createdby,
// eventid, userid, bookingdate). This file is the only place that knows it;
// nothing else maps column names.

type eventRow struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageurl"`
	CreatedBy   string    `json:"createdby"`
}

type bookingRow struct {
	ID          string    `json:"id,omitempty"`
	EventID     string    `json:"eventid"`
	UserID      string    `json:"userid"`
	BookingDate time.Time `json:"bookingdate"`
}

type paymentRow struct {
	ID      string    `json:"id"`
	EventID string    `json:"eventid,omitempty"`
	Amount  float64   `json:"amount"`
	Status  string    `json:"status"`
	Date    time.Time `json:"date"`
}

func paymentToRow(p domain.Payment) paymentRow {
	return paymentRow{
		ID:      p.ID,
		EventID: p.EventID,
		Amount:  p.Amount,
		Status:  string(p.Status),
		Date:    p.OccurredAt,
	}
}

type userRow struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (r eventRow) toDomain() domain.Event {
	return domain.Event{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		OccursAt:    r.Date,
		Venue:       r.Venue,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		OwnerID:     r.CreatedBy,
	}
}

func eventToRow(e domain.Event) eventRow {
	return eventRow{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		Date:        e.OccursAt,
		Venue:       e.Venue,
		Price:       e.Price,
		ImageURL:    e.ImageURL,
		CreatedBy:   e.OwnerID,
	}
}

func (r bookingRow) toDomain() domain.Booking {
	return domain.Booking{
		ID:       r.ID,
		EventID:  r.EventID,
		UserID:   r.UserID,
		BookedAt: r.BookingDate,
	}
}

func (r userRow) toDomain() domain.Principal {
	return domain.Principal{
		ID:          r.ID,
		DisplayName: r.Username,
		Email:       r.Email,
		Role:        domain.Role(r.Role),
	}
}

func userToRow(p domain.Principal) userRow {
	return userRow{
		ID:       p.ID,
		Username: p.DisplayName,
		Email:    p.Email,
		Role:     string(p.Role),
	}
}

func decodeEvents(raw json.RawMessage) ([]domain.Event, error) {
	var rows []eventRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	events := make([]domain.Event, len(rows))
	for i, r := range rows {
		events[i] = r.toDomain()
	}
	return events, nil
}

func decodeEvent(raw json.RawMessage) (domain.Event, error) {
	var r eventRow
	if err := json.Unmarshal(raw, &r); err != nil {
		return domain.Event{}, err
	}
	return r.toDomain(), nil
}

func decodeBookings(raw json.RawMessage) ([]domain.Booking, error) {
	var rows []bookingRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, len(rows))
	for i, r := range rows {
		bookings[i] = r.toDomain()
	}
	return bookings, nil
}

func decodeBooking(raw json.RawMessage) (domain.Booking, error) {
	var r bookingRow
	if err := json.Unmarshal(raw, &r); err != nil {
		return domain.Booking{}, err
	}
	return r.toDomain(), nil
}

func decodeUsers(raw json.RawMessage) ([]domain.Principal, error) {
	var rows []userRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	users := make([]domain.Principal, len(rows))
	for i, r := range rows {
		users[i] = r.toDomain()
	}
	return users, nil
}
