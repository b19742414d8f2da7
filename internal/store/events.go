package store

import (
	"context"
	"fmt"

	"github.com/s448/event-horizon/internal/domain"
	"github.com/s448/event-horizon/internal/gateway"
	"github.com/wb-go/wbf/logger"
)

const eventsTable = "events"

// Events mirrors the full events table. The mirror is unscoped: anonymous
// visitors browse the same catalogue as signed-in users.
type Events struct {
	*collection[domain.Event]
	sessions sessionSource
}

func NewEvents(client tableClient, sessions sessionSource, log logger.Logger) *Events {
	return &Events{
		collection: &collection[domain.Event]{
			table:     eventsTable,
			client:    client,
			log:       log,
			decodeAll: decodeEvents,
			decodeOne: decodeEvent,
			idOf:      func(e domain.Event) string { return e.ID },
			scope:     func() ([]gateway.Filter, bool) { return nil, true },
		},
		sessions: sessions,
	}
}

// Create stamps the current principal as owner. Event creation is an admin
// operation by convention: the consumer surface only offers it to admins,
// the remote store does not enforce it.
func (s *Events) Create(ctx context.Context, input domain.CreateEventInput) (domain.Event, error) {
	principal, ok := s.sessions.Principal()
	if !ok {
		return domain.Event{}, domain.ErrNotAuthenticated
	}

	if input.Name == "" {
		return domain.Event{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return domain.Event{}, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	row := eventRow{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Date:        input.OccursAt,
		Venue:       input.Venue,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		CreatedBy:   principal.ID,
	}

	return s.create(ctx, row)
}

func (s *Events) Update(ctx context.Context, event domain.Event) error {
	if event.ID == "" {
		return fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}

	row := eventToRow(event)
	row.ID = "" // id travels in the predicate, not the patch

	return s.applyUpdate(ctx, event.ID, row, event)
}

func (s *Events) Remove(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
