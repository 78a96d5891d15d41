// Package model defines domain entities used by services and repositories.
package model

import (
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"
)

// PremiumTier is the paid entitlement of an account.
type PremiumTier string

const (
	TierFree              PremiumTier = "FREE"
	TierPremiumCouple     PremiumTier = "PREMIUM_COUPLE"
	TierPremiumCouplePlus PremiumTier = "PREMIUM_COUPLE_PLUS"
)

// User is a player account. Counters and lists are mutated only through
// atomic repository operations, never by overwriting the whole row.
type User struct {
	ID        uuid.UUID
	FirstName string
	PushToken string // push delivery address, empty when unregistered

	Points           int64
	LastPointsReason string
	LastPointsAt     time.Time

	PremiumTier      PremiumTier
	PremiumExpiresAt time.Time

	PartnerID       uuid.UUID // uuid.Nil when unlinked
	PartnerLinkedAt time.Time

	InviteCode            string
	InviteCodeGeneratedAt time.Time
	LastCodeGeneratedAt   time.Time
	FailedInviteAttempts  []time.Time

	UnlockedBadges []string
	DaresSent      int64
	TotalDares     int64
	LastDareSentAt time.Time
	CreatedAt      time.Time
}

// IsPremium reports whether a paid tier is active at now.
func (u *User) IsPremium(now time.Time) bool {
	return u.PremiumTier != "" && u.PremiumTier != TierFree && u.PremiumExpiresAt.After(now)
}

// HasPartner reports whether the account is linked.
func (u *User) HasPartner() bool { return u.PartnerID != uuid.Nil }

// HasBadge reports whether badgeID is already unlocked.
func (u *User) HasBadge(badgeID string) bool { return slices.Contains(u.UnlockedBadges, badgeID) }

// DisplayName returns FirstName or fallback when it is empty.
func (u *User) DisplayName(fallback string) string {
	if u.FirstName == "" {
		return fallback
	}
	return u.FirstName
}

// DareStatus is the lifecycle state of a dare.
type DareStatus string

const (
	DarePending   DareStatus = "pending"
	DareCompleted DareStatus = "completed"
	DareRejected  DareStatus = "rejected"
)

// Terminal reports whether no further transition is allowed.
func (s DareStatus) Terminal() bool { return s == DareCompleted || s == DareRejected }

// Dare is a challenge sent from one partner to the other.
type Dare struct {
	ID         uuid.UUID
	FromUserID uuid.UUID
	ToUserID   uuid.UUID
	Text       string
	Category   string
	IsCustom   bool
	Points     int64 // sender-declared base value
	Status     DareStatus

	SentAt      time.Time
	CompletedAt time.Time

	// Written once on pending -> completed.
	EarnedPoints  int64
	BonusPoints   int64
	BasePoints    int64
	CompletionDay int
	ScoredAt      time.Time

	RejectionReason  string
	RejectionMessage string
	RejectedAt       time.Time
}

// Score is the outcome of the time-decayed bonus calculation.
type Score struct {
	BasePoints  int64
	BonusPoints int64
	TotalPoints int64
	DaysElapsed int
}

// LinkStatus is the lifecycle state of a partner link request.
type LinkStatus string

const (
	LinkPending  LinkStatus = "pending"
	LinkAccepted LinkStatus = "accepted"
	LinkRejected LinkStatus = "rejected"
	LinkExpired  LinkStatus = "expired"
)

// LinkRequest asks ToUserID to become FromUserID's partner.
type LinkRequest struct {
	ID           uuid.UUID
	FromUserID   uuid.UUID
	ToUserID     uuid.UUID
	FromUserName string
	ToUserName   string
	Status       LinkStatus
	CreatedAt    time.Time
	ExpiresAt    time.Time
	ResolvedAt   time.Time
}

// Expired reports whether the request is past its expiry at now.
func (r *LinkRequest) Expired(now time.Time) bool { return r.ExpiresAt.Before(now) }

// Notification types enqueued by the core.
const (
	NotifyPartnerLinkRequest  = "partner_link_request"
	NotifyPartnerLinkAccepted = "partner_link_accepted"
)

// Notification is a queued push job and its delivery outcome.
type Notification struct {
	ID         uuid.UUID
	ToToken    string
	FromUserID uuid.UUID // uuid.Nil for system notifications
	Title      string
	Body       string
	Type       string
	RequestID  uuid.UUID
	Timestamp  time.Time

	Sent        bool
	SentAt      time.Time
	MessageID   string
	Blocked     bool
	BlockReason string
	Error       string
	ErrorCode   string
}

// AuditEvent is an append-only security/fraud record.
type AuditEvent struct {
	EventType string
	UserID    uuid.UUID
	Details   map[string]any
	Timestamp time.Time
}

// Competition is a monthly points race between two partners.
type Competition struct {
	ID            uuid.UUID
	MonthCode     string // "YYYY-M"
	User1ID       uuid.UUID
	User2ID       uuid.UUID
	User1Points   int64
	User2Points   int64
	User1Revealed bool
	User2Revealed bool
}

// Snapshot is one day's standing of a competition.
type Snapshot struct {
	CompetitionID uuid.UUID
	Date          time.Time
	DayOfMonth    int
	User1ID       uuid.UUID
	User2ID       uuid.UUID
	User1Points   int64
	User2Points   int64
	TakenAt       time.Time
}

// Purchase is a verified store receipt.
type Purchase struct {
	UserID        uuid.UUID
	ProductID     string
	PurchaseToken string
	PackageName   string
	Tier          PremiumTier
	PurchasedAt   time.Time
	ExpiresAt     time.Time
}
