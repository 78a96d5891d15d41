package limiter

import (
	"context"
	"fmt"
	"time"
)

// CountFunc counts events logged at or after since.
type CountFunc func(ctx context.Context, since time.Time) (int, error)

// Window is a trailing span with an event quota. Counts are recomputed per
// check rather than maintained incrementally.
type Window struct {
	Span  time.Duration
	Limit int
}

// Since returns the oldest instant inside the window ending at now.
func (w Window) Since(now time.Time) time.Time { return now.Add(-w.Span) }

// Decide turns a count into a verdict: allowed iff used < Limit.
func (w Window) Decide(used int, reason string) Verdict {
	if used >= w.Limit {
		return Verdict{Allowed: false, Reason: reason, Limit: w.Limit, Used: used}
	}
	return Verdict{Allowed: true, Limit: w.Limit, Used: used, Remaining: w.Limit - used}
}

// Check counts events in the window ending at now and decides.
func (w Window) Check(ctx context.Context, now time.Time, count CountFunc, reason string) (Verdict, error) {
	used, err := count(ctx, w.Since(now))
	if err != nil {
		return Verdict{}, fmt.Errorf("count window: %w", err)
	}
	return w.Decide(used, reason), nil
}

// Prune keeps the timestamps strictly after now-Span, preserving order.
func (w Window) Prune(ts []time.Time, now time.Time) []time.Time {
	since := w.Since(now)
	out := make([]time.Time, 0, len(ts))
	for _, t := range ts {
		if t.After(since) {
			out = append(out, t)
		}
	}
	return out
}

// ceilHours rounds a positive duration up to whole hours.
func ceilHours(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Hour - 1) / time.Hour)
}
