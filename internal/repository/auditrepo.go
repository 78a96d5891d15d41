package repository

import (
	"context"

	"github.com/dareus/dareguard/internal/model"
)

// AuditSink is an append-only store for audit events.
type AuditSink interface {
	Append(ctx context.Context, e model.AuditEvent) error
}

// PurchaseRepository records verified store purchases.
type PurchaseRepository interface {
	Record(ctx context.Context, p model.Purchase) error
}
