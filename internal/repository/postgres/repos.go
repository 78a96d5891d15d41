package postgres

import (
	"github.com/dareus/dareguard/internal/repository"
)

var (
	_ repository.UserRepository         = (*UserRepo)(nil)
	_ repository.DareRepository         = (*DareRepo)(nil)
	_ repository.LinkRequestRepository  = (*LinkRepo)(nil)
	_ repository.NotificationRepository = (*NotificationRepo)(nil)
	_ repository.CompetitionRepository  = (*CompetitionRepo)(nil)
	_ repository.AuditSink              = (*AuditRepo)(nil)
	_ repository.PurchaseRepository     = (*PurchaseRepo)(nil)
)
