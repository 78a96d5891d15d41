package memstore

import (
	"context"
	"slices"
	"time"

	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// Users implements repository.UserRepository.
type Users struct{ s *Store }

func cloneUser(u *model.User) *model.User {
	c := *u
	c.FailedInviteAttempts = slices.Clone(u.FailedInviteAttempts)
	c.UnlockedBadges = slices.Clone(u.UnlockedBadges)
	return &c
}

// Create inserts a new account.
func (r *Users) Create(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; ok {
		return errs.ErrAlreadyExists
	}
	if u.InviteCode != "" && r.codeHolder(u.InviteCode) != nil {
		return errs.ErrAlreadyExists
	}
	c := cloneUser(u)
	if c.PremiumTier == "" {
		c.PremiumTier = model.TierFree
	}
	r.s.users[u.ID] = c
	return nil
}

// GetByID loads an account by ID.
func (r *Users) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return cloneUser(u), nil
}

// GetByInviteCode loads the holder of code.
func (r *Users) GetByInviteCode(_ context.Context, code string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u := r.codeHolder(code)
	if u == nil {
		return nil, errs.ErrNotFound
	}
	return cloneUser(u), nil
}

// InviteCodeTaken reports whether any account holds code.
func (r *Users) InviteCodeTaken(_ context.Context, code string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.codeHolder(code) != nil, nil
}

func (r *Users) codeHolder(code string) *model.User {
	for _, u := range r.s.users {
		if u.InviteCode == code {
			return u
		}
	}
	return nil
}

// SetInviteCode claims code for the account.
func (r *Users) SetInviteCode(_ context.Context, id uuid.UUID, code string, at time.Time) error {
	return r.update(id, func(u *model.User) error {
		if h := r.codeHolder(code); h != nil && h.ID != id {
			return errs.ErrAlreadyExists
		}
		u.InviteCode = code
		u.InviteCodeGeneratedAt = at
		u.LastCodeGeneratedAt = at
		return nil
	})
}

// AddPoints adds delta and records the reason.
func (r *Users) AddPoints(_ context.Context, id uuid.UUID, delta int64, reason string, at time.Time) error {
	return r.update(id, func(u *model.User) error {
		u.Points += delta
		u.LastPointsReason = reason
		u.LastPointsAt = at
		return nil
	})
}

// SpendPoints debits cost when the balance covers it.
func (r *Users) SpendPoints(_ context.Context, id uuid.UUID, cost int64, reason string, at time.Time) (int64, error) {
	var balance int64
	err := r.update(id, func(u *model.User) error {
		if u.Points < cost {
			return errs.ErrFailedPrecondition
		}
		u.Points -= cost
		u.LastPointsReason = reason
		u.LastPointsAt = at
		balance = u.Points
		return nil
	})
	return balance, err
}

// IncrementDaresSent bumps daresSent.
func (r *Users) IncrementDaresSent(_ context.Context, id uuid.UUID, at time.Time) error {
	return r.update(id, func(u *model.User) error {
		u.DaresSent++
		u.LastDareSentAt = at
		return nil
	})
}

// IncrementTotalDares bumps totalDares.
func (r *Users) IncrementTotalDares(_ context.Context, id uuid.UUID) error {
	return r.update(id, func(u *model.User) error {
		u.TotalDares++
		return nil
	})
}

// AppendFailedInviteAttempt appends at and prunes entries not after keepAfter.
func (r *Users) AppendFailedInviteAttempt(_ context.Context, id uuid.UUID, at, keepAfter time.Time) error {
	return r.update(id, func(u *model.User) error {
		kept := u.FailedInviteAttempts[:0]
		for _, t := range u.FailedInviteAttempts {
			if t.After(keepAfter) {
				kept = append(kept, t)
			}
		}
		u.FailedInviteAttempts = append(kept, at)
		return nil
	})
}

// ClearFailedInviteAttempts empties the failed attempt list.
func (r *Users) ClearFailedInviteAttempts(_ context.Context, id uuid.UUID) error {
	return r.update(id, func(u *model.User) error {
		u.FailedInviteAttempts = nil
		return nil
	})
}

// AddBadge adds badgeID to the unlocked set.
func (r *Users) AddBadge(_ context.Context, id uuid.UUID, badgeID string) (bool, error) {
	added := false
	err := r.update(id, func(u *model.User) error {
		if u.HasBadge(badgeID) {
			return nil
		}
		u.UnlockedBadges = append(u.UnlockedBadges, badgeID)
		added = true
		return nil
	})
	return added, err
}

// SetPremium overwrites the premium entitlement.
func (r *Users) SetPremium(_ context.Context, id uuid.UUID, tier model.PremiumTier, expiresAt time.Time) error {
	return r.update(id, func(u *model.User) error {
		u.PremiumTier = tier
		u.PremiumExpiresAt = expiresAt
		return nil
	})
}

func (r *Users) update(id uuid.UUID, fn func(u *model.User) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return errs.ErrNotFound
	}
	return fn(u)
}
