package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/s448/event-horizon/internal/derive"
	"github.com/s448/event-horizon/internal/domain"
	"github.com/s448/event-horizon/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type SessionSvc interface {
	Principal() (domain.Principal, bool)
	IsAuthenticated() bool
	IsAdmin() bool
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, username, email, password string) error
	SignOut(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, newPassword string) error
}

type EventsStore interface {
	List() []domain.Event
	GetByID(id string) (domain.Event, bool)
	Create(ctx context.Context, input domain.CreateEventInput) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) error
	Remove(ctx context.Context, id string) error
}

type BookingsStore interface {
	List() []domain.Booking
	Create(ctx context.Context, eventID string) (domain.Booking, error)
	Cancel(ctx context.Context, id string) error
}

type UserDirectory interface {
	List(ctx context.Context) ([]domain.Principal, error)
}

type CheckoutSvc interface {
	Checkout(ctx context.Context, event domain.Event, cardToken string) (domain.Payment, error)
}

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, principal domain.Principal, event domain.Event)
	NotifyBookingCancelled(ctx context.Context, principal domain.Principal, event domain.Event)
}

// Handler is the consumer surface: it reads from the stores, invokes their
// mutations and owns nothing but presentation.
type Handler struct {
	sessions SessionSvc
	events   EventsStore
	bookings BookingsStore
	users    UserDirectory
	checkout CheckoutSvc
	notifier BookingNotifier
}

func NewHandler(
	sessions SessionSvc,
	events EventsStore,
	bookings BookingsStore,
	users UserDirectory,
	checkout CheckoutSvc,
	notifier BookingNotifier,
) *Handler {
	return &Handler{
		sessions: sessions,
		events:   events,
		bookings: bookings,
		users:    users,
		checkout: checkout,
		notifier: notifier,
	}
}

// Auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.sessions.SignIn(c.Request.Context(), req.Email, req.Password); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.sessionBody())
}

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.sessions.SignUp(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.sessionBody())
}

func (h *Handler) Logout(c *ginext.Context) {
	if err := h.sessions.SignOut(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "signed out"})
}

func (h *Handler) ForgotPassword(c *ginext.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// Always success-shaped, whether or not the account exists.
	_ = h.sessions.RequestPasswordReset(c.Request.Context(), req.Email)
	c.JSON(http.StatusOK, ginext.H{"status": "reset link sent if the account exists"})
}

func (h *Handler) ResetPassword(c *ginext.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.sessions.ResetPassword(c.Request.Context(), req.Password); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "password updated"})
}

func (h *Handler) GetSession(c *ginext.Context) {
	c.JSON(http.StatusOK, h.sessionBody())
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	events := h.events.List()

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	event, ok := h.events.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrEventNotFound.Error()})
		return
	}

	resp := dto.EventDetailsResponse{EventResponse: dto.ToEventResponse(event)}
	if principal, ok := h.sessions.Principal(); ok {
		resp.Booked = derive.HasPrincipalBooked(h.bookings.List(), event.ID, principal.ID)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	if !h.requireAdmin(c) {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	occursAt, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected RFC3339",
		})
		return
	}

	event, err := h.events.Create(c.Request.Context(), domain.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		OccursAt:    occursAt,
		Venue:       req.Venue,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	if !h.requireAdmin(c) {
		return
	}

	id := c.Param("id")
	current, ok := h.events.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrEventNotFound.Error()})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	occursAt, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected RFC3339",
		})
		return
	}

	updated := domain.Event{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		OccursAt:    occursAt,
		Venue:       req.Venue,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		OwnerID:     current.OwnerID,
	}
	if err := h.events.Update(c.Request.Context(), updated); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(updated))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	if !h.requireAdmin(c) {
		return
	}

	if err := h.events.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Bookings

// ListMyBookings returns the principal's bookings joined with event details.
// Bookings whose event has been deleted are omitted.
func (h *Handler) ListMyBookings(c *ginext.Context) {
	if !h.sessions.IsAuthenticated() {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrNotAuthenticated.Error()})
		return
	}

	joined := derive.BookingsWithEventDetails(h.bookings.List(), h.events.List())

	resp := make([]dto.BookingDetailsResponse, 0, len(joined))
	for _, row := range joined {
		resp = append(resp, dto.ToBookingDetailsResponse(row))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) BookEvent(c *ginext.Context) {
	eventID := c.Param("id")
	event, ok := h.events.GetByID(eventID)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrEventNotFound.Error()})
		return
	}

	booking, err := h.bookings.Create(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if principal, ok := h.sessions.Principal(); ok {
		go h.notifier.NotifyBookingCreated(context.WithoutCancel(c.Request.Context()), principal, event)
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")

	var event domain.Event
	for _, b := range h.bookings.List() {
		if b.ID == id {
			event, _ = h.events.GetByID(b.EventID)
			break
		}
	}

	if err := h.bookings.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	if principal, ok := h.sessions.Principal(); ok && event.ID != "" {
		go h.notifier.NotifyBookingCancelled(context.WithoutCancel(c.Request.Context()), principal, event)
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// CheckoutEvent charges the card and, only if the charge went through, books
// the event. The two steps are not atomic: a recorded payment with a failed
// booking insert stays recorded, there is no compensation step.
func (h *Handler) CheckoutEvent(c *ginext.Context) {
	eventID := c.Param("id")
	event, ok := h.events.GetByID(eventID)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrEventNotFound.Error()})
		return
	}

	principal, ok := h.sessions.Principal()
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrNotAuthenticated.Error()})
		return
	}

	// A repeat booking must be refused before the card is charged; the store's
	// own duplicate check only runs after checkout has already moved money.
	if derive.HasPrincipalBooked(h.bookings.List(), eventID, principal.ID) {
		h.handleError(c, domain.ErrAlreadyBooked)
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	pay, err := h.checkout.Checkout(c.Request.Context(), event, req.CardToken)
	if err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusPaymentRequired, ginext.H{
			"error":   err.Error(),
			"payment": dto.ToPaymentResponse(pay),
		})
		return
	}

	booking, err := h.bookings.Create(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	go h.notifier.NotifyBookingCreated(context.WithoutCancel(c.Request.Context()), principal, event)

	c.JSON(http.StatusCreated, ginext.H{
		"payment": dto.ToPaymentResponse(pay),
		"booking": dto.ToBookingResponse(booking),
	})
}

// Admin

func (h *Handler) ListUsers(c *ginext.Context) {
	if !h.requireAdmin(c) {
		return
	}

	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PrincipalResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToPrincipalResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RevenueReport(c *ginext.Context) {
	if !h.requireAdmin(c) {
		return
	}

	report := derive.RevenueByEvent(h.events.List(), h.bookings.List())

	resp := make([]dto.RevenueRowResponse, 0, len(report))
	for _, row := range report {
		resp = append(resp, dto.ToRevenueRowResponse(row))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) requireAdmin(c *ginext.Context) bool {
	if !h.sessions.IsAuthenticated() {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrNotAuthenticated.Error()})
		return false
	}
	if !h.sessions.IsAdmin() {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "admin role required"})
		return false
	}
	return true
}

func (h *Handler) sessionBody() dto.SessionResponse {
	resp := dto.SessionResponse{
		Authenticated: h.sessions.IsAuthenticated(),
		Admin:         h.sessions.IsAdmin(),
	}
	if principal, ok := h.sessions.Principal(); ok {
		p := dto.ToPrincipalResponse(principal)
		resp.Principal = &p
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var authErr *domain.AuthError
	var remoteErr *domain.RemoteError

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyBooked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: authErr.Message})

	case errors.Is(err, domain.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	case errors.As(err, &remoteErr):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: remoteErr.Message})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
