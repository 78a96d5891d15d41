package memstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
	"gopkg.in/yaml.v3"
)

// Fixture seeds a memory store. In memory mode nothing else creates users,
// dares or notifications; the hook endpoint then replays events against them.
type Fixture struct {
	Users         []SeedUser         `yaml:"users"`
	Competitions  []SeedCompetition  `yaml:"competitions"`
	Dares         []SeedDare         `yaml:"dares"`
	Notifications []SeedNotification `yaml:"notifications"`
}

type SeedUser struct {
	ID               uuid.UUID         `yaml:"id"`
	FirstName        string            `yaml:"first_name"`
	PushToken        string            `yaml:"push_token"`
	Points           int64             `yaml:"points"`
	PremiumTier      model.PremiumTier `yaml:"premium_tier"`
	PremiumExpiresAt time.Time         `yaml:"premium_expires_at"`
	PartnerID        uuid.UUID         `yaml:"partner_id"`
	InviteCode       string            `yaml:"invite_code"`
}

type SeedCompetition struct {
	ID        uuid.UUID `yaml:"id"`
	MonthCode string    `yaml:"month_code"`
	User1ID   uuid.UUID `yaml:"user1_id"`
	User2ID   uuid.UUID `yaml:"user2_id"`
}

type SeedDare struct {
	ID          uuid.UUID        `yaml:"id"`
	FromUserID  uuid.UUID        `yaml:"from_user_id"`
	ToUserID    uuid.UUID        `yaml:"to_user_id"`
	Text        string           `yaml:"text"`
	Category    string           `yaml:"category"`
	IsCustom    bool             `yaml:"is_custom"`
	Points      int64            `yaml:"points"`
	Status      model.DareStatus `yaml:"status"`
	SentAt      time.Time        `yaml:"sent_at"`
	CompletedAt time.Time        `yaml:"completed_at"`
}

type SeedNotification struct {
	ID         uuid.UUID `yaml:"id"`
	ToToken    string    `yaml:"to_token"`
	FromUserID uuid.UUID `yaml:"from_user_id"`
	Title      string    `yaml:"title"`
	Body       string    `yaml:"body"`
	Type       string    `yaml:"type"`
	RequestID  uuid.UUID `yaml:"request_id"`
	Timestamp  time.Time `yaml:"timestamp"`
}

// LoadFixture reads a YAML fixture.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// Seed inserts every fixture row. Missing times default to now.
func (s *Store) Seed(ctx context.Context, f *Fixture, now time.Time) error {
	for _, u := range f.Users {
		if u.ID == uuid.Nil {
			return errors.New("seed user: id is required")
		}
		err := s.Users().Create(ctx, &model.User{
			ID:               u.ID,
			FirstName:        u.FirstName,
			PushToken:        u.PushToken,
			Points:           u.Points,
			PremiumTier:      u.PremiumTier,
			PremiumExpiresAt: u.PremiumExpiresAt,
			PartnerID:        u.PartnerID,
			InviteCode:       u.InviteCode,
			CreatedAt:        now,
		})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	for _, c := range f.Competitions {
		err := s.Competitions().Create(ctx, &model.Competition{
			ID:        c.ID,
			MonthCode: c.MonthCode,
			User1ID:   c.User1ID,
			User2ID:   c.User2ID,
		})
		if err != nil {
			return fmt.Errorf("seed competition %s: %w", c.ID, err)
		}
	}
	for _, d := range f.Dares {
		if d.Status == "" {
			d.Status = model.DarePending
		}
		if d.SentAt.IsZero() {
			d.SentAt = now
		}
		if d.Status == model.DareCompleted && d.CompletedAt.IsZero() {
			d.CompletedAt = now
		}
		err := s.Dares().Create(ctx, &model.Dare{
			ID:          d.ID,
			FromUserID:  d.FromUserID,
			ToUserID:    d.ToUserID,
			Text:        d.Text,
			Category:    d.Category,
			IsCustom:    d.IsCustom,
			Points:      d.Points,
			Status:      d.Status,
			SentAt:      d.SentAt,
			CompletedAt: d.CompletedAt,
		})
		if err != nil {
			return fmt.Errorf("seed dare %s: %w", d.ID, err)
		}
	}
	for _, n := range f.Notifications {
		if n.Timestamp.IsZero() {
			n.Timestamp = now
		}
		err := s.Notifications().Enqueue(ctx, &model.Notification{
			ID:         n.ID,
			ToToken:    n.ToToken,
			FromUserID: n.FromUserID,
			Title:      n.Title,
			Body:       n.Body,
			Type:       n.Type,
			RequestID:  n.RequestID,
			Timestamp:  n.Timestamp,
		})
		if err != nil {
			return fmt.Errorf("seed notification %s: %w", n.ID, err)
		}
	}
	return nil
}
