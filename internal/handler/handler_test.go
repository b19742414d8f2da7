package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/s448/event-horizon/internal/domain"
	"github.com/s448/event-horizon/internal/handler/dto"
	hmocks "github.com/s448/event-horizon/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testEnv struct {
	sessions *hmocks.MockSessionSvc
	events   *hmocks.MockEventsStore
	bookings *hmocks.MockBookingsStore
	users    *hmocks.MockUserDirectory
	checkout *hmocks.MockCheckoutSvc
	notifier *hmocks.MockBookingNotifier
	router   http.Handler
}

func setupRouter(t *testing.T) testEnv {
	t.Helper()

	env := testEnv{
		sessions: hmocks.NewMockSessionSvc(t),
		events:   hmocks.NewMockEventsStore(t),
		bookings: hmocks.NewMockBookingsStore(t),
		users:    hmocks.NewMockUserDirectory(t),
		checkout: hmocks.NewMockCheckoutSvc(t),
		notifier: hmocks.NewMockBookingNotifier(t),
	}

	h := NewHandler(env.sessions, env.events, env.bookings, env.users, env.checkout, env.notifier)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/login", h.Login)
		api.POST("/auth/register", h.Register)
		api.POST("/auth/logout", h.Logout)
		api.POST("/auth/forgot-password", h.ForgotPassword)
		api.POST("/auth/reset-password", h.ResetPassword)
		api.GET("/session", h.GetSession)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", h.CreateEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.GET("/bookings", h.ListMyBookings)
		api.POST("/events/:id/book", h.BookEvent)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.POST("/events/:id/checkout", h.CheckoutEvent)
		api.GET("/admin/users", h.ListUsers)
		api.GET("/admin/revenue", h.RevenueReport)
	}
	env.router = r

	return env
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func asAdmin(env testEnv) {
	env.sessions.EXPECT().IsAuthenticated().Return(true)
	env.sessions.EXPECT().IsAdmin().Return(true)
}

// --- Auth ---

func TestHandler_Login_Success(t *testing.T) {
	env := setupRouter(t)

	env.sessions.EXPECT().SignIn(mock.Anything, "alice@example.com", "secret123").Return(nil)
	env.sessions.EXPECT().IsAuthenticated().Return(true)
	env.sessions.EXPECT().IsAdmin().Return(false)
	env.sessions.EXPECT().Principal().
		Return(domain.Principal{ID: "u1", DisplayName: "alice", Role: domain.RoleMember}, true)

	w := doJSON(t, env.router, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "alice@example.com", Password: "secret123"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Authenticated)
	require.NotNil(t, resp.Principal)
	assert.Equal(t, "alice", resp.Principal.Username)
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	env := setupRouter(t)

	env.sessions.EXPECT().SignIn(mock.Anything, "alice@example.com", "wrong1").
		Return(&domain.AuthError{Message: "Invalid login credentials"})

	w := doJSON(t, env.router, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "alice@example.com", Password: "wrong1"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid login credentials", resp.Error)
}

func TestHandler_Login_MalformedBody(t *testing.T) {
	env := setupRouter(t)

	w := doJSON(t, env.router, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ForgotPassword_AlwaysSuccessShaped(t *testing.T) {
	env := setupRouter(t)

	// Unknown account or not, the response looks the same.
	env.sessions.EXPECT().RequestPasswordReset(mock.Anything, "ghost@example.com").Return(nil)

	w := doJSON(t, env.router, http.MethodPost, "/api/auth/forgot-password",
		dto.ForgotPasswordRequest{Email: "ghost@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reset link sent if the account exists")
}

func TestHandler_GetSession_Anonymous(t *testing.T) {
	env := setupRouter(t)

	env.sessions.EXPECT().IsAuthenticated().Return(false)
	env.sessions.EXPECT().IsAdmin().Return(false)
	env.sessions.EXPECT().Principal().Return(domain.Principal{}, false)

	w := doJSON(t, env.router, http.MethodGet, "/api/session", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Authenticated)
	assert.Nil(t, resp.Principal)
}

// --- Events ---

func TestHandler_ListEvents_Success(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().List().Return([]domain.Event{
		{ID: "e1", Name: "Concert", Price: 25},
		{ID: "e2", Name: "Expo"},
	})

	w := doJSON(t, env.router, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Concert", resp[0].Name)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().GetByID("ghost").Return(domain.Event{}, false)

	w := doJSON(t, env.router, http.MethodGet, "/api/events/ghost", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEvent_BookedFlagForPrincipal(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().GetByID("e1").Return(domain.Event{ID: "e1", Name: "Concert"}, true)
	env.sessions.EXPECT().Principal().Return(domain.Principal{ID: "u1"}, true)
	env.bookings.EXPECT().List().Return([]domain.Booking{
		{ID: "b1", EventID: "e1", UserID: "u1"},
	})

	w := doJSON(t, env.router, http.MethodGet, "/api/events/e1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"booked":true`)
}

func TestHandler_GetEvent_AnonymousSeesBookedFalse(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().GetByID("e1").Return(domain.Event{ID: "e1", Name: "Concert"}, true)
	env.sessions.EXPECT().Principal().Return(domain.Principal{}, false)

	w := doJSON(t, env.router, http.MethodGet, "/api/events/e1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"booked":false`)
	env.bookings.AssertNotCalled(t, "List")
}

func TestHandler_CreateEvent_RequiresAdmin(t *testing.T) {
	env := setupRouter(t)

	env.sessions.EXPECT().IsAuthenticated().Return(true)
	env.sessions.EXPECT().IsAdmin().Return(false)

	w := doJSON(t, env.router, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name: "Concert",
		Date: time.Now().Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	env.events.AssertNotCalled(t, "Create")
}

func TestHandler_CreateEvent_RequiresAuthentication(t *testing.T) {
	env := setupRouter(t)

	env.sessions.EXPECT().IsAuthenticated().Return(false)

	w := doJSON(t, env.router, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name: "Concert",
		Date: time.Now().Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	env := setupRouter(t)
	asAdmin(env)

	occursAt := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	created := domain.Event{ID: "e1", Name: "Concert", OccursAt: occursAt, Price: 25, OwnerID: "admin-1"}

	env.events.EXPECT().Create(mock.Anything, mock.Anything).Return(created, nil)

	w := doJSON(t, env.router, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:  "Concert",
		Date:  occursAt.Format(time.RFC3339),
		Price: 25,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "e1", resp.ID)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	env := setupRouter(t)
	asAdmin(env)

	w := doJSON(t, env.router, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name: "Concert",
		Date: "tomorrow-ish",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.events.AssertNotCalled(t, "Create")
}

func TestHandler_UpdateEvent_PreservesOwner(t *testing.T) {
	env := setupRouter(t)
	asAdmin(env)

	occursAt := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	env.events.EXPECT().GetByID("e1").
		Return(domain.Event{ID: "e1", Name: "Concert", OwnerID: "admin-1"}, true)

	var updated domain.Event
	env.events.EXPECT().Update(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event domain.Event) {
			updated = event
		}).
		Return(nil)

	w := doJSON(t, env.router, http.MethodPut, "/api/events/e1", dto.UpdateEventRequest{
		Name:  "Renamed",
		Date:  occursAt.Format(time.RFC3339),
		Price: 30,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin-1", updated.OwnerID)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestHandler_DeleteEvent_Success(t *testing.T) {
	env := setupRouter(t)
	asAdmin(env)

	env.events.EXPECT().Remove(mock.Anything, "e1").Return(nil)

	w := doJSON(t, env.router, http.MethodDelete, "/api/events/e1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Bookings ---

func TestHandler_ListMyBookings_JoinsEventDetails(t *testing.T) {
	env := setupRouter(t)

	env.sessions.EXPECT().IsAuthenticated().Return(true)
	env.bookings.EXPECT().List().Return([]domain.Booking{
		{ID: "b1", EventID: "e1", UserID: "u1"},
		{ID: "b2", EventID: "deleted-event", UserID: "u1"},
	})
	env.events.EXPECT().List().Return([]domain.Event{{ID: "e1", Name: "Concert"}})

	w := doJSON(t, env.router, http.MethodGet, "/api/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Concert", resp[0].Event.Name)
}

func TestHandler_ListMyBookings_Unauthenticated(t *testing.T) {
	env := setupRouter(t)

	env.sessions.EXPECT().IsAuthenticated().Return(false)

	w := doJSON(t, env.router, http.MethodGet, "/api/bookings", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_BookEvent_Success(t *testing.T) {
	env := setupRouter(t)

	event := domain.Event{ID: "e1", Name: "Concert"}
	principal := domain.Principal{ID: "u1", DisplayName: "alice"}

	env.events.EXPECT().GetByID("e1").Return(event, true)
	env.bookings.EXPECT().Create(mock.Anything, "e1").
		Return(domain.Booking{ID: "b1", EventID: "e1", UserID: "u1"}, nil)
	env.sessions.EXPECT().Principal().Return(principal, true)
	env.notifier.EXPECT().NotifyBookingCreated(mock.Anything, principal, event).Return()

	w := doJSON(t, env.router, http.MethodPost, "/api/events/e1/book", nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b1", resp.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestHandler_BookEvent_Duplicate(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().GetByID("e1").Return(domain.Event{ID: "e1"}, true)
	env.bookings.EXPECT().Create(mock.Anything, "e1").
		Return(domain.Booking{}, domain.ErrAlreadyBooked)

	w := doJSON(t, env.router, http.MethodPost, "/api/events/e1/book", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BookEvent_EventNotFound(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().GetByID("ghost").Return(domain.Event{}, false)

	w := doJSON(t, env.router, http.MethodPost, "/api/events/ghost/book", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env.bookings.AssertNotCalled(t, "Create")
}

func TestHandler_BookEvent_RemoteUnavailable(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().GetByID("e1").Return(domain.Event{ID: "e1"}, true)
	env.bookings.EXPECT().Create(mock.Anything, "e1").
		Return(domain.Booking{}, domain.ErrNotConfigured)

	w := doJSON(t, env.router, http.MethodPost, "/api/events/e1/book", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	env := setupRouter(t)

	event := domain.Event{ID: "e1", Name: "Concert"}
	principal := domain.Principal{ID: "u1", DisplayName: "alice"}

	env.bookings.EXPECT().List().Return([]domain.Booking{{ID: "b1", EventID: "e1", UserID: "u1"}})
	env.events.EXPECT().GetByID("e1").Return(event, true)
	env.bookings.EXPECT().Cancel(mock.Anything, "b1").Return(nil)
	env.sessions.EXPECT().Principal().Return(principal, true)
	env.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, principal, event).Return()

	w := doJSON(t, env.router, http.MethodDelete, "/api/bookings/b1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

// --- Checkout ---

func TestHandler_CheckoutEvent_ChargeFailureReturns402(t *testing.T) {
	env := setupRouter(t)

	event := domain.Event{ID: "e1", Name: "Concert", Price: 25}
	failed := domain.Payment{ID: "p1", EventID: "e1", Amount: 25, Status: domain.PaymentStatusFailed}

	env.events.EXPECT().GetByID("e1").Return(event, true)
	env.sessions.EXPECT().Principal().Return(domain.Principal{ID: "u1"}, true)
	env.bookings.EXPECT().List().Return(nil)
	env.checkout.EXPECT().Checkout(mock.Anything, event, "tok_declined").
		Return(failed, &domain.RemoteError{Message: "charge declined"})

	w := doJSON(t, env.router, http.MethodPost, "/api/events/e1/checkout",
		dto.CheckoutRequest{CardToken: "tok_declined"})

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	// A declined charge still leaves a payment record in the response body.
	assert.Contains(t, w.Body.String(), `"status":"failed"`)
	env.bookings.AssertNotCalled(t, "Create")
}

func TestHandler_CheckoutEvent_Success(t *testing.T) {
	env := setupRouter(t)

	event := domain.Event{ID: "e1", Name: "Concert", Price: 25}
	principal := domain.Principal{ID: "u1", DisplayName: "alice"}
	paid := domain.Payment{ID: "p1", EventID: "e1", Amount: 25, Status: domain.PaymentStatusCompleted}

	env.events.EXPECT().GetByID("e1").Return(event, true)
	env.sessions.EXPECT().Principal().Return(principal, true)
	env.bookings.EXPECT().List().Return(nil)
	env.checkout.EXPECT().Checkout(mock.Anything, event, "tok_visa").Return(paid, nil)
	env.bookings.EXPECT().Create(mock.Anything, "e1").
		Return(domain.Booking{ID: "b1", EventID: "e1", UserID: "u1"}, nil)
	env.notifier.EXPECT().NotifyBookingCreated(mock.Anything, principal, event).Return()

	w := doJSON(t, env.router, http.MethodPost, "/api/events/e1/checkout",
		dto.CheckoutRequest{CardToken: "tok_visa"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"booking"`)
	assert.Contains(t, w.Body.String(), `"payment"`)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestHandler_CheckoutEvent_Unauthenticated(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().GetByID("e1").Return(domain.Event{ID: "e1"}, true)
	env.sessions.EXPECT().Principal().Return(domain.Principal{}, false)

	w := doJSON(t, env.router, http.MethodPost, "/api/events/e1/checkout",
		dto.CheckoutRequest{CardToken: "tok_visa"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env.checkout.AssertNotCalled(t, "Checkout")
}

func TestHandler_CheckoutEvent_AlreadyBookedFailsBeforeCharge(t *testing.T) {
	env := setupRouter(t)

	event := domain.Event{ID: "e1", Name: "Concert", Price: 25}

	env.events.EXPECT().GetByID("e1").Return(event, true)
	env.sessions.EXPECT().Principal().Return(domain.Principal{ID: "u1"}, true)
	env.bookings.EXPECT().List().Return([]domain.Booking{
		{ID: "b1", EventID: "e1", UserID: "u1"},
	})

	w := doJSON(t, env.router, http.MethodPost, "/api/events/e1/checkout",
		dto.CheckoutRequest{CardToken: "tok_visa"})

	assert.Equal(t, http.StatusConflict, w.Code)
	// The refusal happens before any money moves.
	env.checkout.AssertNotCalled(t, "Checkout")
	env.bookings.AssertNotCalled(t, "Create")
}

// --- Admin ---

func TestHandler_ListUsers_Success(t *testing.T) {
	env := setupRouter(t)
	asAdmin(env)

	env.users.EXPECT().List(mock.Anything).Return([]domain.Principal{
		{ID: "u1", DisplayName: "alice", Role: domain.RoleAdmin},
		{ID: "u2", DisplayName: "bob", Role: domain.RoleMember},
	}, nil)

	w := doJSON(t, env.router, http.MethodGet, "/api/admin/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PrincipalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "admin", resp[0].Role)
}

func TestHandler_RevenueReport_Success(t *testing.T) {
	env := setupRouter(t)
	asAdmin(env)

	env.events.EXPECT().List().Return([]domain.Event{{ID: "e1", Name: "Concert", Price: 25}})
	env.bookings.EXPECT().List().Return([]domain.Booking{
		{ID: "b1", EventID: "e1"},
		{ID: "b2", EventID: "e1"},
	})

	w := doJSON(t, env.router, http.MethodGet, "/api/admin/revenue", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RevenueRowResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 2, resp[0].BookingCount)
	assert.Equal(t, 50.0, resp[0].Revenue)
}

func TestHandler_RevenueReport_RequiresAdmin(t *testing.T) {
	env := setupRouter(t)

	env.sessions.EXPECT().IsAuthenticated().Return(true)
	env.sessions.EXPECT().IsAdmin().Return(false)

	w := doJSON(t, env.router, http.MethodGet, "/api/admin/revenue", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
