// Package events turns storage change notices into typed events and
// dispatches them to registered handlers.
package events

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/dareus/dareguard/internal/model"
	"go.uber.org/zap"
)

// Kind names an entity change.
type Kind string

const (
	DareCreated         Kind = "dare.created"
	DareUpdated         Kind = "dare.updated"
	NotificationCreated Kind = "notification.created"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case DareCreated, DareUpdated, NotificationCreated:
		return true
	}
	return false
}

// Event is a typed entity change.
type Event interface{ Kind() Kind }

// DareCreatedEvent carries a newly written dare.
type DareCreatedEvent struct{ Dare model.Dare }

// DareUpdatedEvent carries a dare before and after a write.
type DareUpdatedEvent struct{ Before, After model.Dare }

// NotificationCreatedEvent carries a newly queued push job.
type NotificationCreatedEvent struct{ Notification model.Notification }

func (DareCreatedEvent) Kind() Kind         { return DareCreated }
func (DareUpdatedEvent) Kind() Kind         { return DareUpdated }
func (NotificationCreatedEvent) Kind() Kind { return NotificationCreated }

// IsCompletionEdge reports the pending -> completed transition. Writes that
// leave a completed dare completed are not an edge.
func IsCompletionEdge(before, after model.Dare) bool {
	return before.Status == model.DarePending && after.Status == model.DareCompleted
}

// Handler reacts to one event.
type Handler interface {
	Handle(ctx context.Context, ev Event) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, ev Event) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, ev Event) error { return f(ctx, ev) }

// Registry maps kinds to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[Kind][]Handler
	log      *zap.Logger
}

// NewRegistry constructs an empty registry.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{handlers: map[Kind][]Handler{}, log: log}
}

// On registers h for kind.
func (r *Registry) On(kind Kind, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[kind] = append(r.handlers[kind], h)
}

// OnDareCreated registers fn for new dares.
func (r *Registry) OnDareCreated(fn func(ctx context.Context, d model.Dare) error) {
	r.On(DareCreated, HandlerFunc(func(ctx context.Context, ev Event) error {
		return fn(ctx, ev.(DareCreatedEvent).Dare)
	}))
}

// OnDareCompleted registers fn for the pending -> completed edge only.
func (r *Registry) OnDareCompleted(fn func(ctx context.Context, before, after model.Dare) error) {
	r.On(DareUpdated, HandlerFunc(func(ctx context.Context, ev Event) error {
		e := ev.(DareUpdatedEvent)
		if !IsCompletionEdge(e.Before, e.After) {
			return nil
		}
		return fn(ctx, e.Before, e.After)
	}))
}

// OnNotificationCreated registers fn for new push jobs.
func (r *Registry) OnNotificationCreated(fn func(ctx context.Context, n model.Notification) error) {
	r.On(NotificationCreated, HandlerFunc(func(ctx context.Context, ev Event) error {
		return fn(ctx, ev.(NotificationCreatedEvent).Notification)
	}))
}

// Dispatch runs every handler of ev's kind. Handlers are independent: a
// failing or panicking handler does not stop the others.
func (r *Registry) Dispatch(ctx context.Context, ev Event) error {
	r.mu.RLock()
	hs := append([]Handler(nil), r.handlers[ev.Kind()]...)
	r.mu.RUnlock()

	var all []error
	for _, h := range hs {
		if err := r.run(ctx, h, ev); err != nil {
			r.log.Error("event handler failed", zap.String("kind", string(ev.Kind())), zap.Error(err))
			all = append(all, err)
		}
	}
	return errors.Join(all...)
}

func (r *Registry) run(ctx context.Context, h Handler, ev Event) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("panic",
				zap.Any("reason", rec),
				zap.ByteString("stack", debug.Stack()),
				zap.String("kind", string(ev.Kind())),
			)
			err = fmt.Errorf("handler panic: %v", rec)
		}
	}()
	return h.Handle(ctx, ev)
}
