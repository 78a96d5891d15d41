// Package snapshot records the daily standing of every monthly competition.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dareus/dareguard/internal/model"
	"github.com/dareus/dareguard/internal/repository"
	"go.uber.org/zap"
)

// DefaultTimeZone decides which calendar day and month a run belongs to.
const DefaultTimeZone = "America/New_York"

// ErrAlreadyRan is returned when another trigger already claimed today.
var ErrAlreadyRan = errors.New("snapshot already taken today")

// Locker claims a calendar day so repeated triggers run once.
type Locker interface {
	Acquire(ctx context.Context, day, owner string) (bool, error)
	Release(ctx context.Context, day string) error
}

// Result summarises one run.
type Result struct {
	Day       string
	MonthCode string
	Added     int
	Skipped   int
}

// Job takes one snapshot per competition per day.
type Job struct {
	comps repository.CompetitionRepository
	lock  Locker
	loc   *time.Location
	owner string
	log   *zap.Logger
	now   func() time.Time
}

// New constructs a Job. lock may be nil, in which case the snapshot table's
// per-day key is the only dedupe.
func New(comps repository.CompetitionRepository, lock Locker, loc *time.Location, owner string, log *zap.Logger) *Job {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Job{comps: comps, lock: lock, loc: loc, owner: owner, log: log, now: time.Now}
}

// LoadLocation resolves name, falling back to DefaultTimeZone when empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimeZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", name, err)
	}
	return loc, nil
}

// MonthCode formats t as "YYYY-M", the month key of competitions.
func MonthCode(t time.Time) string {
	return fmt.Sprintf("%d-%d", t.Year(), int(t.Month()))
}

// Run snapshots every competition of the current month.
func (j *Job) Run(ctx context.Context) (Result, error) {
	now := j.now().In(j.loc)
	res := Result{Day: now.Format("2006-01-02"), MonthCode: MonthCode(now)}
	log := j.log.With(zap.String("day", res.Day), zap.String("month", res.MonthCode))

	if j.lock != nil {
		ok, err := j.lock.Acquire(ctx, res.Day, j.owner)
		if err != nil {
			return res, err
		}
		if !ok {
			log.Info("snapshot skipped, day already claimed")
			return res, ErrAlreadyRan
		}
	}

	comps, err := j.comps.ListByMonth(ctx, res.MonthCode)
	if err != nil {
		j.release(ctx, res.Day)
		return res, fmt.Errorf("list competitions: %w", err)
	}
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, c := range comps {
		added, err := j.comps.AddSnapshot(ctx, model.Snapshot{
			CompetitionID: c.ID,
			Date:          date,
			DayOfMonth:    now.Day(),
			User1ID:       c.User1ID,
			User2ID:       c.User2ID,
			User1Points:   c.User1Points,
			User2Points:   c.User2Points,
			TakenAt:       now.UTC(),
		})
		if err != nil {
			j.release(ctx, res.Day)
			return res, fmt.Errorf("add snapshot %s: %w", c.ID, err)
		}
		if added {
			res.Added++
		} else {
			res.Skipped++
		}
	}
	log.Info("daily snapshots created", zap.Int("added", res.Added), zap.Int("skipped", res.Skipped))
	return res, nil
}

// release frees the day after a failed run so the next trigger retries it.
// Snapshots already written are kept by the per-day key.
func (j *Job) release(ctx context.Context, day string) {
	if j.lock == nil {
		return
	}
	if err := j.lock.Release(ctx, day); err != nil {
		j.log.Warn("release snapshot lock", zap.String("day", day), zap.Error(err))
	}
}
