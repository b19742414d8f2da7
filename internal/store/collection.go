package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/s448/event-horizon/internal/domain"
	"github.com/s448/event-horizon/internal/gateway"
	"github.com/wb-go/wbf/logger"
)

type tableClient interface {
	Select(ctx context.Context, table string, filters ...gateway.Filter) (json.RawMessage, error)
	Insert(ctx context.Context, table string, row any) (json.RawMessage, error)
	Update(ctx context.Context, table string, patch any, filters ...gateway.Filter) error
	Delete(ctx context.Context, table string, filters ...gateway.Filter) error
	Subscribe(table, filter string, onChange func()) (func(), error)
}

type sessionSource interface {
	Principal() (domain.Principal, bool)
}

// collection is an in-memory mirror of one remote table, optionally scoped by
// a predicate derived from the current principal. Refreshes are idempotent
// full-snapshot replacements; mutations apply locally only after the remote
// store confirmed them.
type collection[T any] struct {
	table     string
	client    tableClient
	log       logger.Logger
	decodeAll func(json.RawMessage) ([]T, error)
	decodeOne func(json.RawMessage) (T, error)
	idOf      func(T) string
	scope     func() ([]gateway.Filter, bool)

	mu    sync.RWMutex
	items []T

	subMu sync.Mutex
	unsub func()
}

// List returns the current cached snapshot in insertion order.
func (c *collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) GetByID(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// Refresh replaces the mirror with a freshly fetched scoped snapshot. The
// scope is re-read when the fetch resolves: if it changed in flight (another
// principal signed in, or nobody is), the response is stale and dropped
// rather than applied. Cheap cancellation without cancelling anything.
func (c *collection[T]) Refresh(ctx context.Context) error {
	filters, ok := c.scope()
	if !ok {
		c.clear()
		return nil
	}

	raw, err := c.client.Select(ctx, c.table, filters...)
	if err != nil {
		return fmt.Errorf("refresh %s: %w", c.table, err)
	}

	items, err := c.decodeAll(raw)
	if err != nil {
		return fmt.Errorf("decode %s snapshot: %w", c.table, err)
	}

	current, ok := c.scope()
	if !ok || !equalFilters(filters, current) {
		c.log.Debug("dropping stale snapshot", logger.String("table", c.table))
		return nil
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()

	return nil
}

// Start subscribes to the table's change feed and then loads the initial
// snapshot. Subscribe-first ordering guarantees no change slips between the
// two; a notification arriving early just triggers one extra refresh, which
// is harmless because refreshes are idempotent.
func (c *collection[T]) Start(ctx context.Context) error {
	if err := c.subscribe(ctx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

func (c *collection[T]) subscribe(ctx context.Context) error {
	filters, ok := c.scope()
	if !ok {
		return nil
	}

	unsub, err := c.client.Subscribe(c.table, subscriptionFilter(filters), func() {
		if err := c.Refresh(ctx); err != nil {
			c.log.Warn("change-triggered refresh failed",
				logger.String("table", c.table),
				logger.String("error", err.Error()),
			)
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", c.table, err)
	}

	c.subMu.Lock()
	c.unsub = unsub
	c.subMu.Unlock()

	return nil
}

func (c *collection[T]) Stop() {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}
}

func (c *collection[T]) clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// create inserts remotely and appends the server-returned canonical record,
// not the optimistic input. On failure the cache is untouched.
func (c *collection[T]) create(ctx context.Context, row any) (T, error) {
	var zero T

	stored, err := c.client.Insert(ctx, c.table, row)
	if err != nil {
		return zero, fmt.Errorf("create in %s: %w", c.table, err)
	}

	item, err := c.decodeOne(stored)
	if err != nil {
		return zero, fmt.Errorf("decode stored %s row: %w", c.table, err)
	}

	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()

	return item, nil
}

// applyUpdate patches the remote row and only then replaces the local entry,
// so unconfirmed state is never shown as confirmed.
func (c *collection[T]) applyUpdate(ctx context.Context, id string, patch any, updated T) error {
	if err := c.client.Update(ctx, c.table, patch, gateway.Eq("id", id)); err != nil {
		return fmt.Errorf("update %s: %w", c.table, err)
	}

	c.mu.Lock()
	for i, item := range c.items {
		if c.idOf(item) == id {
			c.items[i] = updated
			break
		}
	}
	c.mu.Unlock()

	return nil
}

func (c *collection[T]) remove(ctx context.Context, id string, extra ...gateway.Filter) error {
	filters := append([]gateway.Filter{gateway.Eq("id", id)}, extra...)
	if err := c.client.Delete(ctx, c.table, filters...); err != nil {
		return fmt.Errorf("delete from %s: %w", c.table, err)
	}

	c.mu.Lock()
	kept := c.items[:0]
	for _, item := range c.items {
		if c.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.mu.Unlock()

	return nil
}

func equalFilters(a, b []gateway.Filter) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func subscriptionFilter(filters []gateway.Filter) string {
	if len(filters) == 0 {
		return ""
	}
	f := filters[0]
	return f.Column + "=eq." + f.Value
}
