package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeSink struct {
	got []model.AuditEvent
	err error
}

func (f *fakeSink) Append(_ context.Context, e model.AuditEvent) error {
	if f.err != nil {
		return f.err
	}
	f.got = append(f.got, e)
	return nil
}

func TestRecord_Appends(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{}
	l := New(sink, nil)
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	l.now = func() time.Time { return at }
	uid := uuid.Must(uuid.NewV4())

	l.Record(context.Background(), EventBadgeFraud, uid, map[string]any{"badgeId": "x"})

	if len(sink.got) != 1 {
		t.Fatalf("want 1 event, got %d", len(sink.got))
	}
	e := sink.got[0]
	if e.EventType != EventBadgeFraud || e.UserID != uid || !e.Timestamp.Equal(at) || e.Details["badgeId"] != "x" {
		t.Fatalf("unexpected event: %+v", e)
	}
}

func TestRecord_SinkFailureIsLoggedOnly(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	l := New(&fakeSink{err: errors.New("disk full")}, zap.New(core))

	l.Record(context.Background(), EventInviteNotFound, uuid.Nil, nil)

	if logs.FilterMessage("audit append failed").Len() != 1 {
		t.Fatalf("want one warning, got %v", logs.All())
	}
}

func TestRecord_NilLogger(t *testing.T) {
	t.Parallel()

	var l *Logger
	l.Record(context.Background(), EventInviteNotFound, uuid.Nil, nil)
}
