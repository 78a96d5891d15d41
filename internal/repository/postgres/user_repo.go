package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, first_name, push_token, points, last_points_reason, last_points_at,
premium_tier, premium_expires_at, partner_id, partner_linked_at,
invite_code, invite_code_generated_at, last_code_generated_at, failed_invite_attempts,
unlocked_badges, dares_sent, total_dares, last_dare_sent_at, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var (
		u       model.User
		tier    string
		partner uuid.NullUUID
		code    *string
	)
	var pointsAt, premiumAt, linkedAt, codeAt, lastCodeAt, lastDareAt *time.Time
	err := row.Scan(
		&u.ID, &u.FirstName, &u.PushToken, &u.Points, &u.LastPointsReason, &pointsAt,
		&tier, &premiumAt, &partner, &linkedAt,
		&code, &codeAt, &lastCodeAt, &u.FailedInviteAttempts,
		&u.UnlockedBadges, &u.DaresSent, &u.TotalDares, &lastDareAt, &u.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	u.PremiumTier = model.PremiumTier(tier)
	if partner.Valid {
		u.PartnerID = partner.UUID
	}
	u.InviteCode = stringOrEmpty(code)
	u.LastPointsAt = timeOrZero(pointsAt)
	u.PremiumExpiresAt = timeOrZero(premiumAt)
	u.PartnerLinkedAt = timeOrZero(linkedAt)
	u.InviteCodeGeneratedAt = timeOrZero(codeAt)
	u.LastCodeGeneratedAt = timeOrZero(lastCodeAt)
	u.LastDareSentAt = timeOrZero(lastDareAt)
	return &u, nil
}

// Create inserts a new user row.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, first_name, push_token, premium_tier, premium_expires_at)
VALUES ($1, $2, $3, $4, $5)`
	tier := u.PremiumTier
	if tier == "" {
		tier = model.TierFree
	}
	_, err := r.db.Pool.Exec(ctx, q, u.ID, u.FirstName, u.PushToken, string(tier), nullTime(u.PremiumExpiresAt))
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return scanUser(r.db.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
}

// GetByInviteCode selects the user holding code.
func (r *UserRepo) GetByInviteCode(ctx context.Context, code string) (*model.User, error) {
	return scanUser(r.db.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE invite_code=$1`, code))
}

// InviteCodeTaken reports whether any user holds code.
func (r *UserRepo) InviteCodeTaken(ctx context.Context, code string) (bool, error) {
	var taken bool
	err := r.db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE invite_code=$1)`, code).Scan(&taken)
	return taken, err
}

// SetInviteCode claims code; the unique index turns a concurrent claim into ErrAlreadyExists.
func (r *UserRepo) SetInviteCode(ctx context.Context, id uuid.UUID, code string, at time.Time) error {
	const q = `
UPDATE users
SET invite_code=$2, invite_code_generated_at=$3, last_code_generated_at=$3
WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id, code, at)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// AddPoints adds delta in a single statement.
func (r *UserRepo) AddPoints(ctx context.Context, id uuid.UUID, delta int64, reason string, at time.Time) error {
	const q = `
UPDATE users
SET points = points + $2, last_points_reason=$3, last_points_at=$4
WHERE id=$1`
	return r.execOne(ctx, q, id, delta, reason, at)
}

// SpendPoints debits cost only when the balance covers it.
func (r *UserRepo) SpendPoints(ctx context.Context, id uuid.UUID, cost int64, reason string, at time.Time) (int64, error) {
	const q = `
UPDATE users
SET points = points - $2, last_points_reason=$3, last_points_at=$4
WHERE id=$1 AND points >= $2
RETURNING points`
	var balance int64
	err := r.db.Pool.QueryRow(ctx, q, id, cost, reason, at).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}
	// No row: either the user is missing or the balance is short.
	if _, err := r.GetByID(ctx, id); err != nil {
		return 0, err
	}
	return 0, errs.ErrFailedPrecondition
}

// IncrementDaresSent bumps dares_sent and stamps last_dare_sent_at.
func (r *UserRepo) IncrementDaresSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.execOne(ctx, `UPDATE users SET dares_sent = dares_sent + 1, last_dare_sent_at=$2 WHERE id=$1`, id, at)
}

// IncrementTotalDares bumps total_dares.
func (r *UserRepo) IncrementTotalDares(ctx context.Context, id uuid.UUID) error {
	return r.execOne(ctx, `UPDATE users SET total_dares = total_dares + 1 WHERE id=$1`, id)
}

// AppendFailedInviteAttempt appends at and prunes entries not after keepAfter in one statement.
func (r *UserRepo) AppendFailedInviteAttempt(ctx context.Context, id uuid.UUID, at, keepAfter time.Time) error {
	const q = `
UPDATE users
SET failed_invite_attempts = array_append(
    ARRAY(SELECT t FROM unnest(failed_invite_attempts) AS t WHERE t > $3), $2::timestamptz)
WHERE id=$1`
	return r.execOne(ctx, q, id, at, keepAfter)
}

// ClearFailedInviteAttempts empties the attempt list.
func (r *UserRepo) ClearFailedInviteAttempts(ctx context.Context, id uuid.UUID) error {
	return r.execOne(ctx, `UPDATE users SET failed_invite_attempts = '{}' WHERE id=$1`, id)
}

// AddBadge set-adds badgeID; added is false when the badge was already unlocked.
func (r *UserRepo) AddBadge(ctx context.Context, id uuid.UUID, badgeID string) (bool, error) {
	const q = `
UPDATE users
SET unlocked_badges = array_append(unlocked_badges, $2)
WHERE id=$1 AND NOT ($2 = ANY(unlocked_badges))`
	tag, err := r.db.Pool.Exec(ctx, q, id, badgeID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

// SetPremium overwrites the entitlement.
func (r *UserRepo) SetPremium(ctx context.Context, id uuid.UUID, tier model.PremiumTier, expiresAt time.Time) error {
	const q = `UPDATE users SET premium_tier=$2, premium_expires_at=$3 WHERE id=$1`
	return r.execOne(ctx, q, id, string(tier), nullTime(expiresAt))
}

func (r *UserRepo) execOne(ctx context.Context, q string, args ...any) error {
	tag, err := r.db.Pool.Exec(ctx, q, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
