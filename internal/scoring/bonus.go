// Package scoring computes dare rewards and mutates the point ledger.
package scoring

import (
	"time"

	"github.com/dareus/dareguard/internal/model"
)

const day = 24 * time.Hour

// quarters[n-1] is the bonus multiplier, in quarters, for completion on day n.
// Day five and later earn no bonus.
var quarters = []int64{4, 3, 2, 1}

// BonusFor rewards fast completion. Same-day completion is day 1; a
// completion stamped before the send also counts as day 1.
func BonusFor(base int64, sentAt, completedAt time.Time) model.Score {
	days := int(completedAt.Sub(sentAt)/day) + 1
	if days < 1 {
		days = 1
	}
	var bonus int64
	if days <= len(quarters) && base > 0 {
		bonus = base * quarters[days-1] / 4
	}
	return model.Score{
		BasePoints:  base,
		BonusPoints: bonus,
		TotalPoints: base + bonus,
		DaysElapsed: days,
	}
}
