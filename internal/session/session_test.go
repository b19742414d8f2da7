package session

import (
	"context"
	"errors"
	"testing"

	"github.com/s448/event-horizon/internal/domain"
	"github.com/s448/event-horizon/internal/gateway"
	"github.com/s448/event-horizon/internal/session/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestManager_Start_AdoptsExistingSession(t *testing.T) {
	auth := mocks.NewMockAuthClient(t)
	profiles := mocks.NewMockProfileDirectory(t)
	mgr := New(auth, profiles, newTestLogger(t))

	auth.EXPECT().OnSessionChange(mock.Anything).Return(func() {})
	auth.EXPECT().Session(mock.Anything).
		Return(&gateway.Session{UserID: "u1", Email: "alice@example.com"}, nil)
	profiles.EXPECT().ByID(mock.Anything, "u1").
		Return(&domain.Principal{ID: "u1", DisplayName: "alice", Role: domain.RoleMember}, nil)

	require.NoError(t, mgr.Start(context.Background()))

	principal, ok := mgr.Principal()
	require.True(t, ok)
	assert.Equal(t, "alice", principal.DisplayName)
	// The profile row carries no email; the auth session fills the gap.
	assert.Equal(t, "alice@example.com", principal.Email)
	assert.True(t, mgr.IsAuthenticated())
	assert.False(t, mgr.IsAdmin())
}

func TestManager_Start_RegistersListenerBeforeProbing(t *testing.T) {
	auth := mocks.NewMockAuthClient(t)
	profiles := mocks.NewMockProfileDirectory(t)
	mgr := New(auth, profiles, newTestLogger(t))

	var order []string
	auth.EXPECT().OnSessionChange(mock.Anything).
		Run(func(func(gateway.SessionEvent)) {
			order = append(order, "listen")
		}).
		Return(func() {})
	auth.EXPECT().Session(mock.Anything).
		Run(func(context.Context) {
			order = append(order, "probe")
		}).
		Return(nil, nil)

	require.NoError(t, mgr.Start(context.Background()))

	assert.Equal(t, []string{"listen", "probe"}, order)
}

func TestManager_Start_MissingProfileStaysAnonymous(t *testing.T) {
	auth := mocks.NewMockAuthClient(t)
	profiles := mocks.NewMockProfileDirectory(t)
	mgr := New(auth, profiles, newTestLogger(t))

	auth.EXPECT().OnSessionChange(mock.Anything).Return(func() {})
	auth.EXPECT().Session(mock.Anything).
		Return(&gateway.Session{UserID: "ghost"}, nil)
	profiles.EXPECT().ByID(mock.Anything, "ghost").Return(nil, nil)

	require.NoError(t, mgr.Start(context.Background()))

	_, ok := mgr.Principal()
	assert.False(t, ok)
	assert.False(t, mgr.IsAuthenticated())
}

func TestManager_Start_ProfileLookupFailureStaysAnonymous(t *testing.T) {
	auth := mocks.NewMockAuthClient(t)
	profiles := mocks.NewMockProfileDirectory(t)
	mgr := New(auth, profiles, newTestLogger(t))

	auth.EXPECT().OnSessionChange(mock.Anything).Return(func() {})
	auth.EXPECT().Session(mock.Anything).
		Return(&gateway.Session{UserID: "u1"}, nil)
	profiles.EXPECT().ByID(mock.Anything, "u1").
		Return(nil, errors.New("connection refused"))

	require.NoError(t, mgr.Start(context.Background()))

	assert.False(t, mgr.IsAuthenticated())
}

func TestManager_SignedInEventAdoptsSession(t *testing.T) {
	auth := mocks.NewMockAuthClient(t)
	profiles := mocks.NewMockProfileDirectory(t)
	mgr := New(auth, profiles, newTestLogger(t))

	var listener func(gateway.SessionEvent)
	auth.EXPECT().OnSessionChange(mock.Anything).
		Run(func(fn func(gateway.SessionEvent)) {
			listener = fn
		}).
		Return(func() {})
	auth.EXPECT().Session(mock.Anything).Return(nil, nil)
	profiles.EXPECT().ByID(mock.Anything, "u1").
		Return(&domain.Principal{ID: "u1", Role: domain.RoleAdmin}, nil)

	require.NoError(t, mgr.Start(context.Background()))
	require.False(t, mgr.IsAuthenticated())

	listener(gateway.SessionEvent{
		Kind:    gateway.SessionSignedIn,
		Session: &gateway.Session{UserID: "u1"},
	})

	assert.True(t, mgr.IsAuthenticated())
	assert.True(t, mgr.IsAdmin())
}

func TestManager_SignedOutEventClearsPrincipalAndNotifies(t *testing.T) {
	auth := mocks.NewMockAuthClient(t)
	profiles := mocks.NewMockProfileDirectory(t)
	mgr := New(auth, profiles, newTestLogger(t))

	var listener func(gateway.SessionEvent)
	auth.EXPECT().OnSessionChange(mock.Anything).
		Run(func(fn func(gateway.SessionEvent)) {
			listener = fn
		}).
		Return(func() {})
	auth.EXPECT().Session(mock.Anything).
		Return(&gateway.Session{UserID: "u1"}, nil)
	profiles.EXPECT().ByID(mock.Anything, "u1").
		Return(&domain.Principal{ID: "u1", Role: domain.RoleMember}, nil)

	require.NoError(t, mgr.Start(context.Background()))
	require.True(t, mgr.IsAuthenticated())

	var seen []*domain.Principal
	mgr.OnChange(func(p *domain.Principal) {
		seen = append(seen, p)
	})

	listener(gateway.SessionEvent{Kind: gateway.SessionSignedOut})

	assert.False(t, mgr.IsAuthenticated())
	require.Len(t, seen, 1)
	assert.Nil(t, seen[0])
}

func TestManager_SignUp_CreatesProfileAndAdoptsIt(t *testing.T) {
	auth := mocks.NewMockAuthClient(t)
	profiles := mocks.NewMockProfileDirectory(t)
	mgr := New(auth, profiles, newTestLogger(t))

	auth.EXPECT().SignUp(mock.Anything, "bob@example.com", "secret123").Return("u9", nil)

	var created *domain.Principal
	profiles.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p *domain.Principal) {
			created = p
		}).
		Return(nil)

	require.NoError(t, mgr.SignUp(context.Background(), "bob", "bob@example.com", "secret123"))

	require.NotNil(t, created)
	assert.Equal(t, "u9", created.ID)
	assert.Equal(t, domain.RoleMember, created.Role)

	principal, ok := mgr.Principal()
	require.True(t, ok)
	assert.Equal(t, "bob", principal.DisplayName)
}

func TestManager_SignUp_AuthFailureSkipsProfileCreation(t *testing.T) {
	auth := mocks.NewMockAuthClient(t)
	profiles := mocks.NewMockProfileDirectory(t)
	mgr := New(auth, profiles, newTestLogger(t))

	auth.EXPECT().SignUp(mock.Anything, "bob@example.com", "secret123").
		Return("", &domain.AuthError{Message: "email already registered"})

	err := mgr.SignUp(context.Background(), "bob", "bob@example.com", "secret123")

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	profiles.AssertNotCalled(t, "Create")
	assert.False(t, mgr.IsAuthenticated())
}

func TestManager_RequestPasswordReset_NeverRevealsWhetherAccountExists(t *testing.T) {
	auth := mocks.NewMockAuthClient(t)
	profiles := mocks.NewMockProfileDirectory(t)
	mgr := New(auth, profiles, newTestLogger(t))

	auth.EXPECT().RequestPasswordReset(mock.Anything, "ghost@example.com").
		Return(&domain.AuthError{Message: "user not found"})

	err := mgr.RequestPasswordReset(context.Background(), "ghost@example.com")

	assert.NoError(t, err)
}

func TestManager_ResetPassword_RejectsShortPassword(t *testing.T) {
	auth := mocks.NewMockAuthClient(t)
	profiles := mocks.NewMockProfileDirectory(t)
	mgr := New(auth, profiles, newTestLogger(t))

	err := mgr.ResetPassword(context.Background(), "abc")

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	auth.AssertNotCalled(t, "UpdatePassword")
}

func TestManager_ResetPassword_DelegatesToAuth(t *testing.T) {
	auth := mocks.NewMockAuthClient(t)
	profiles := mocks.NewMockProfileDirectory(t)
	mgr := New(auth, profiles, newTestLogger(t))

	auth.EXPECT().UpdatePassword(mock.Anything, "secret123").Return(nil)

	require.NoError(t, mgr.ResetPassword(context.Background(), "secret123"))
}
