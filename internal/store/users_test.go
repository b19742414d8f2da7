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

func TestUsers_ByID_Found(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	users := NewUsers(client, newTestLogger(t))

	client.EXPECT().Select(mock.Anything, "users", gateway.Eq("id", "u1")).
		Return(json.RawMessage(`[{"id":"u1","username":"alice","email":"alice@example.com","role":"admin"}]`), nil)

	profile, err := users.ByID(context.Background(), "u1")

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "alice", profile.DisplayName)
	assert.Equal(t, domain.RoleAdmin, profile.Role)
	assert.True(t, profile.IsAdmin())
}

func TestUsers_ByID_MissingRowIsNotAnError(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	users := NewUsers(client, newTestLogger(t))

	client.EXPECT().Select(mock.Anything, "users", gateway.Eq("id", "ghost")).
		Return(json.RawMessage(`[]`), nil)

	profile, err := users.ByID(context.Background(), "ghost")

	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestUsers_ByID_RemoteErrorPropagates(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	users := NewUsers(client, newTestLogger(t))

	client.EXPECT().Select(mock.Anything, "users", gateway.Eq("id", "u1")).
		Return(nil, &domain.RemoteError{Message: "boom"})

	_, err := users.ByID(context.Background(), "u1")

	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "boom", remoteErr.Message)
}

func TestUsers_Create_WritesProfileRow(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	users := NewUsers(client, newTestLogger(t))

	var sent userRow
	client.EXPECT().Insert(mock.Anything, "users", mock.Anything).
		Run(func(_ context.Context, _ string, row any) {
			sent = row.(userRow)
		}).
		Return(json.RawMessage(`{"id":"u1"}`), nil)

	err := users.Create(context.Background(), &domain.Principal{
		ID:          "u1",
		DisplayName: "alice",
		Email:       "alice@example.com",
		Role:        domain.RoleMember,
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", sent.Username)
	assert.Equal(t, "user", sent.Role)
}

func TestUsers_List_DecodesAllRows(t *testing.T) {
	client := mocks.NewMockTableClient(t)
	users := NewUsers(client, newTestLogger(t))

	client.EXPECT().Select(mock.Anything, "users").
		Return(json.RawMessage(`[{"id":"u1","role":"user"},{"id":"u2","role":"admin"}]`), nil)

	list, err := users.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.RoleAdmin, list[1].Role)
}
