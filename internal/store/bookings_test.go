package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/s448/event-horizon/internal/domain"
	"github.com/s448/event-horizon/internal/gateway"
	"github.com/s448/event-horizon/internal/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signedIn(sessions *mocks.MockSessionSource, userID string) {
	sessions.EXPECT().Principal().Return(domain.Principal{ID: userID, Role: domain.RoleMember}, true)
}

func TestBookings_Refresh_ScopedToPrincipal(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	sessions := mocks.NewMockSessionSource(t)
	store := NewBookings(client, sessions, newTestLogger(t))

	signedIn(sessions, "u1")
	client.EXPECT().Select(mock.Anything, "bookings", gateway.Eq("userid", "u1")).
		Return(json.RawMessage(`[{"id":"b1","eventid":"e1","userid":"u1"}]`), nil)

	require.NoError(t, store.Refresh(context.Background()))

	bookings := store.List()
	require.Len(t, bookings, 1)
	assert.Equal(t, "e1", bookings[0].EventID)
}

func TestBookings_Refresh_AnonymousClearsWithoutFetch(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	sessions := mocks.NewMockSessionSource(t)
	store := NewBookings(client, sessions, newTestLogger(t))

	sessions.EXPECT().Principal().Return(domain.Principal{}, false)

	require.NoError(t, store.Refresh(context.Background()))

	assert.Empty(t, store.List())
	client.AssertNotCalled(t, "Select")
}

func TestBookings_Refresh_DropsStaleSnapshotAfterPrincipalChange(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	sessions := mocks.NewMockSessionSource(t)
	store := NewBookings(client, sessions, newTestLogger(t))

	// The principal flips while the fetch is in flight; the snapshot that
	// comes back belongs to the old scope and must not be applied.
	currentUser := "u1"
	sessions.EXPECT().Principal().RunAndReturn(func() (domain.Principal, bool) {
		return domain.Principal{ID: currentUser, Role: domain.RoleMember}, true
	})
	client.EXPECT().Select(mock.Anything, "bookings", gateway.Eq("userid", "u1")).
		Run(func(context.Context, string, ...gateway.Filter) {
			currentUser = "u2"
		}).
		Return(json.RawMessage(`[{"id":"b1","eventid":"e1","userid":"u1"}]`), nil)

	require.NoError(t, store.Refresh(context.Background()))

	assert.Empty(t, store.List())
}

func TestBookings_Create_Unauthenticated(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	sessions := mocks.NewMockSessionSource(t)
	store := NewBookings(client, sessions, newTestLogger(t))

	sessions.EXPECT().Principal().Return(domain.Principal{}, false)

	_, err := store.Create(context.Background(), "e1")

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	client.AssertNotCalled(t, "Insert")
}

func TestBookings_Create_DuplicateFailsWithoutRemoteCall(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	sessions := mocks.NewMockSessionSource(t)
	store := NewBookings(client, sessions, newTestLogger(t))

	signedIn(sessions, "u1")
	client.EXPECT().Select(mock.Anything, "bookings", gateway.Eq("userid", "u1")).
		Return(json.RawMessage(`[{"id":"b1","eventid":"e1","userid":"u1"}]`), nil)
	require.NoError(t, store.Refresh(context.Background()))

	_, err := store.Create(context.Background(), "e1")

	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
	client.AssertNotCalled(t, "Insert")
}

func TestBookings_Create_AppendsServerRecord(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	sessions := mocks.NewMockSessionSource(t)
	store := NewBookings(client, sessions, newTestLogger(t))

	signedIn(sessions, "u1")

	var sent bookingRow
	client.EXPECT().Insert(mock.Anything, "bookings", mock.Anything).
		Run(func(_ context.Context, _ string, row any) {
			sent = row.(bookingRow)
		}).
		Return(json.RawMessage(`{"id":"srv-b1","eventid":"e1","userid":"u1"}`), nil)

	booking, err := store.Create(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "srv-b1", booking.ID)
	assert.Equal(t, "u1", sent.UserID)
	assert.False(t, sent.BookingDate.IsZero())

	require.Len(t, store.List(), 1)
}

func TestBookings_Cancel_ConstrainsByPrincipal(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	sessions := mocks.NewMockSessionSource(t)
	store := NewBookings(client, sessions, newTestLogger(t))

	signedIn(sessions, "u1")
	client.EXPECT().Select(mock.Anything, "bookings", gateway.Eq("userid", "u1")).
		Return(json.RawMessage(`[{"id":"b1","eventid":"e1","userid":"u1"}]`), nil)
	require.NoError(t, store.Refresh(context.Background()))

	client.EXPECT().Delete(mock.Anything, "bookings", gateway.Eq("id", "b1"), gateway.Eq("userid", "u1")).
		Return(nil)

	require.NoError(t, store.Cancel(context.Background(), "b1"))
	assert.Empty(t, store.List())
}

func TestBookings_Cancel_FailureLeavesMirrorUntouched(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	sessions := mocks.NewMockSessionSource(t)
	store := NewBookings(client, sessions, newTestLogger(t))

	signedIn(sessions, "u1")
	client.EXPECT().Select(mock.Anything, "bookings", gateway.Eq("userid", "u1")).
		Return(json.RawMessage(`[{"id":"b1","eventid":"e1","userid":"u1"}]`), nil)
	require.NoError(t, store.Refresh(context.Background()))

	client.EXPECT().Delete(mock.Anything, "bookings", gateway.Eq("id", "b1"), gateway.Eq("userid", "u1")).
		Return(&domain.RemoteError{Message: "delete rejected"})

	err := store.Cancel(context.Background(), "b1")

	require.Error(t, err)
	require.Len(t, store.List(), 1)
}

func TestBookings_SignOutEmptiesMirrorSynchronously(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	sessions := mocks.NewMockSessionSource(t)
	store := NewBookings(client, sessions, newTestLogger(t))

	signedIn(sessions, "u1")
	client.EXPECT().Select(mock.Anything, "bookings", gateway.Eq("userid", "u1")).
		Return(json.RawMessage(`[{"id":"b1","eventid":"e1","userid":"u1"}]`), nil)
	require.NoError(t, store.Refresh(context.Background()))
	require.Len(t, store.List(), 1)

	store.OnPrincipalChange(context.Background(), nil)

	assert.Empty(t, store.List())
}

func TestBookings_PrincipalChangeRebindsScope(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	sessions := mocks.NewMockSessionSource(t)
	store := NewBookings(client, sessions, newTestLogger(t))

	signedIn(sessions, "u2")
	client.EXPECT().Subscribe("bookings", "userid=eq.u2", mock.Anything).
		Return(func() {}, nil)
	client.EXPECT().Select(mock.Anything, "bookings", gateway.Eq("userid", "u2")).
		Return(json.RawMessage(`[{"id":"b2","eventid":"e2","userid":"u2"}]`), nil)

	store.OnPrincipalChange(context.Background(), &domain.Principal{ID: "u2"})

	bookings := store.List()
	require.Len(t, bookings, 1)
	assert.Equal(t, "u2", bookings[0].UserID)

	store.Stop()
}
