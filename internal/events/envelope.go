package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// Envelope is the wire form of a change notice, shared by the Postgres
// NOTIFY channel and the HTTP hook.
type Envelope struct {
	Kind         Kind      `json:"kind"`
	ID           uuid.UUID `json:"id"`
	BeforeStatus string    `json:"beforeStatus,omitempty"`
}

// DecodeEnvelope parses and validates a notice.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if !env.Kind.Valid() {
		return Envelope{}, fmt.Errorf("unknown event kind %q", env.Kind)
	}
	if env.ID == uuid.Nil {
		return Envelope{}, errors.New("envelope without id")
	}
	if env.Kind == DareUpdated && env.BeforeStatus == "" {
		return Envelope{}, errors.New("dare.updated without beforeStatus")
	}
	return env, nil
}

// DareGetter loads dares.
type DareGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Dare, error)
}

// NotificationGetter loads push jobs.
type NotificationGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Notification, error)
}

// Loader turns envelopes into typed events by reading current state.
type Loader struct {
	Dares         DareGetter
	Notifications NotificationGetter
}

// Resolve loads the entity named by env. For dare.updated the before image
// carries only the previous status, which is all edge detection needs.
func (l Loader) Resolve(ctx context.Context, env Envelope) (Event, error) {
	switch env.Kind {
	case DareCreated:
		d, err := l.Dares.Get(ctx, env.ID)
		if err != nil {
			return nil, fmt.Errorf("load dare: %w", err)
		}
		return DareCreatedEvent{Dare: *d}, nil
	case DareUpdated:
		d, err := l.Dares.Get(ctx, env.ID)
		if err != nil {
			return nil, fmt.Errorf("load dare: %w", err)
		}
		before := *d
		before.Status = model.DareStatus(env.BeforeStatus)
		return DareUpdatedEvent{Before: before, After: *d}, nil
	case NotificationCreated:
		n, err := l.Notifications.Get(ctx, env.ID)
		if err != nil {
			return nil, fmt.Errorf("load notification: %w", err)
		}
		return NotificationCreatedEvent{Notification: *n}, nil
	}
	return nil, fmt.Errorf("unknown event kind %q", env.Kind)
}
