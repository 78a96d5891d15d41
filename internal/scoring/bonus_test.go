package scoring

import (
	"testing"
	"time"
)

func TestBonusFor_Table(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		name        string
		base        int64
		elapsed     time.Duration
		bonus, days int64
	}{
		{"same day", 100, 0, 100, 1},
		{"late same day", 100, 23*time.Hour + 59*time.Minute, 100, 1},
		{"day two", 100, 24 * time.Hour, 75, 2},
		{"day three", 100, 2 * 24 * time.Hour, 50, 3},
		{"day four", 100, 3 * 24 * time.Hour, 25, 4},
		{"day five", 100, 4 * 24 * time.Hour, 0, 5},
		{"floored", 3, 24 * time.Hour, 2, 2},
		{"zero base", 0, 0, 0, 1},
		{"completed before sent", 100, -30 * time.Hour, 100, 1},
	}
	for _, tc := range cases {
		s := BonusFor(tc.base, t0, t0.Add(tc.elapsed))
		if s.BonusPoints != tc.bonus || int64(s.DaysElapsed) != tc.days || s.TotalPoints != tc.base+tc.bonus || s.BasePoints != tc.base {
			t.Fatalf("%s: got %+v", tc.name, s)
		}
	}
}

func TestBonusFor_MonotonicAndNeverBelowBase(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for base := int64(0); base <= 250; base += 7 {
		prev := BonusFor(base, t0, t0)
		for d := 1; d <= 10; d++ {
			s := BonusFor(base, t0, t0.Add(time.Duration(d)*24*time.Hour))
			if s.BonusPoints > prev.BonusPoints {
				t.Fatalf("base %d: bonus grew from day %d to %d", base, prev.DaysElapsed, s.DaysElapsed)
			}
			if s.TotalPoints < base {
				t.Fatalf("base %d: total %d below base", base, s.TotalPoints)
			}
			prev = s
		}
	}
}
