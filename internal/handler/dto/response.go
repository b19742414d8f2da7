package dto

import (
	"time"

	"github.com/s448/event-horizon/internal/derive"
	"github.com/s448/event-horizon/internal/domain"
)

type EventResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Venue       string  `json:"venue"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	CreatedBy   string  `json:"created_by"`
}

// EventDetailsResponse adds the viewer-specific booked flag to a single
// event read. Anonymous viewers always see it false.
type EventDetailsResponse struct {
	EventResponse
	Booked bool `json:"booked"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	UserID      string `json:"user_id"`
	BookingDate string `json:"booking_date"`
}

type BookingDetailsResponse struct {
	Booking BookingResponse `json:"booking"`
	Event   EventResponse   `json:"event"`
}

type SessionResponse struct {
	Authenticated bool               `json:"authenticated"`
	Admin         bool               `json:"admin"`
	Principal     *PrincipalResponse `json:"principal,omitempty"`
}

type PrincipalResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type PaymentResponse struct {
	ID      string  `json:"id"`
	EventID string  `json:"event_id,omitempty"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
	Date    string  `json:"date"`
}

type RevenueRowResponse struct {
	Event        EventResponse `json:"event"`
	BookingCount int           `json:"booking_count"`
	Revenue      float64       `json:"revenue"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		Date:        e.OccursAt.Format(time.RFC3339),
		Venue:       e.Venue,
		Price:       e.Price,
		ImageURL:    e.ImageURL,
		CreatedBy:   e.OwnerID,
	}
}

func ToBookingResponse(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		EventID:     b.EventID,
		UserID:      b.UserID,
		BookingDate: b.BookedAt.Format(time.RFC3339),
	}
}

func ToBookingDetailsResponse(row derive.BookingWithEvent) BookingDetailsResponse {
	return BookingDetailsResponse{
		Booking: ToBookingResponse(row.Booking),
		Event:   ToEventResponse(row.Event),
	}
}

func ToPrincipalResponse(p domain.Principal) PrincipalResponse {
	return PrincipalResponse{
		ID:       p.ID,
		Username: p.DisplayName,
		Email:    p.Email,
		Role:     string(p.Role),
	}
}

func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:      p.ID,
		EventID: p.EventID,
		Amount:  p.Amount,
		Status:  string(p.Status),
		Date:    p.OccurredAt.Format(time.RFC3339),
	}
}

func ToRevenueRowResponse(row derive.EventRevenue) RevenueRowResponse {
	return RevenueRowResponse{
		Event:        ToEventResponse(row.Event),
		BookingCount: row.BookingCount,
		Revenue:      row.Revenue,
	}
}
