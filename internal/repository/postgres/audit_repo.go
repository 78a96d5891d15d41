package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dareus/dareguard/internal/model"
)

// AuditRepo appends audit events to audit_log.
type AuditRepo struct{ db *DB }

// NewAuditRepo constructs an audit sink.
func NewAuditRepo(db *DB) *AuditRepo { return &AuditRepo{db: db} }

// Append inserts one event with details stored as JSONB.
func (r *AuditRepo) Append(ctx context.Context, e model.AuditEvent) error {
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("audit details: %w", err)
	}
	const q = `INSERT INTO audit_log (event_type, user_id, details, created_at) VALUES ($1, $2, $3, $4)`
	_, err = r.db.Pool.Exec(ctx, q, e.EventType, nullUUID(e.UserID), raw, e.Timestamp)
	return err
}

// PurchaseRepo records verified purchases.
type PurchaseRepo struct{ db *DB }

// NewPurchaseRepo constructs a purchase repository.
func NewPurchaseRepo(db *DB) *PurchaseRepo { return &PurchaseRepo{db: db} }

// Record inserts a purchase row.
func (r *PurchaseRepo) Record(ctx context.Context, p model.Purchase) error {
	const q = `
INSERT INTO purchases (user_id, product_id, purchase_token, package_name, tier, purchased_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Pool.Exec(ctx, q, p.UserID, p.ProductID, p.PurchaseToken, p.PackageName, string(p.Tier), p.PurchasedAt, p.ExpiresAt)
	return err
}
