package limiter

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWindow_Decide(t *testing.T) {
	t.Parallel()

	w := Window{Span: time.Hour, Limit: 5}
	v := w.Decide(3, "full")
	if !v.Allowed || v.Remaining != 2 || v.Used != 3 || v.Limit != 5 || v.Reason != "" {
		t.Fatalf("under limit: %+v", v)
	}
	v = w.Decide(5, "full")
	if v.Allowed || v.Remaining != 0 || v.Reason != "full" {
		t.Fatalf("at limit: %+v", v)
	}
}

func TestWindow_Check_PassesSince(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	w := Window{Span: 7 * 24 * time.Hour, Limit: 5}

	var gotSince time.Time
	v, err := w.Check(context.Background(), now, func(_ context.Context, since time.Time) (int, error) {
		gotSince = since
		return 1, nil
	}, "x")
	if err != nil || !v.Allowed || v.Remaining != 4 {
		t.Fatalf("v=%+v err=%v", v, err)
	}
	if !gotSince.Equal(now.Add(-7 * 24 * time.Hour)) {
		t.Fatalf("since=%v", gotSince)
	}

	boom := errors.New("boom")
	if _, err := w.Check(context.Background(), now, func(context.Context, time.Time) (int, error) {
		return 0, boom
	}, "x"); !errors.Is(err, boom) {
		t.Fatalf("want wrapped count error, got %v", err)
	}
}

func TestWindow_Prune(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	w := Window{Span: time.Hour, Limit: 5}
	ts := []time.Time{
		now.Add(-2 * time.Hour),
		now.Add(-time.Hour), // boundary is outside
		now.Add(-59 * time.Minute),
		now.Add(-time.Minute),
	}
	got := w.Prune(ts, now)
	if len(got) != 2 || !got[0].Equal(ts[2]) || !got[1].Equal(ts[3]) {
		t.Fatalf("prune: %v", got)
	}
	if len(w.Prune(nil, now)) != 0 {
		t.Fatalf("prune nil")
	}
}

func TestCeilHours(t *testing.T) {
	t.Parallel()

	cases := map[time.Duration]int{
		0:                             0,
		time.Minute:                   1,
		time.Hour:                     1,
		time.Hour + time.Second:       2,
		23*time.Hour + 59*time.Minute: 24,
	}
	for d, want := range cases {
		if got := ceilHours(d); got != want {
			t.Fatalf("ceilHours(%v)=%d want %d", d, got, want)
		}
	}
}
