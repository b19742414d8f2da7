package store

import (
	"context"
	"fmt"

	"github.com/s448/event-horizon/internal/domain"
	"github.com/s448/event-horizon/internal/gateway"
	"github.com/wb-go/wbf/logger"
)

const usersTable = "users"

// Users reads and writes profile rows. Unlike events and bookings the table
// is not mirrored: profiles are joined into the session on demand and listed
// only on the admin surface, so fetch-through is enough.
type Users struct {
	client tableClient
	log    logger.Logger
}

func NewUsers(client tableClient, log logger.Logger) *Users {
	return &Users{client: client, log: log}
}

// ByID returns the profile row, or nil when no row exists. The missing-row
// case is not an error here: the session manager decides what an
// authenticated session without a profile means.
func (u *Users) ByID(ctx context.Context, id string) (*domain.Principal, error) {
	raw, err := u.client.Select(ctx, usersTable, gateway.Eq("id", id))
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	profiles, err := decodeUsers(raw)
	if err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, nil
	}

	p := profiles[0]
	return &p, nil
}

func (u *Users) Create(ctx context.Context, p *domain.Principal) error {
	if _, err := u.client.Insert(ctx, usersTable, userToRow(*p)); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (u *Users) List(ctx context.Context) ([]domain.Principal, error) {
	raw, err := u.client.Select(ctx, usersTable)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	return decodeUsers(raw)
}
