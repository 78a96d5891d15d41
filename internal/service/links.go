package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/dareus/dareguard/internal/repository"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// LinkRequestTTL is how long a partner link request stays acceptable.
const LinkRequestTTL = 7 * 24 * time.Hour

const (
	msgSelfLinked    = "You are already linked with a partner. Unlink first."
	msgPartnerLinked = "This person is already linked with someone else"
)

// AcceptResult is a successful link.
type AcceptResult struct {
	PartnerID   uuid.UUID
	PartnerName string
	Message     string
}

// LinkService runs the partner link consent workflow.
type LinkService interface {
	// Request asks partnerID to link with userID.
	Request(ctx context.Context, userID, partnerID uuid.UUID) (requestID uuid.UUID, message string, err error)
	// Accept links userID with the sender of requestID.
	Accept(ctx context.Context, userID, requestID uuid.UUID) (AcceptResult, error)
	// Reject declines requestID.
	Reject(ctx context.Context, userID, requestID uuid.UUID) (message string, err error)
}

type LinkServiceImpl struct {
	users repository.UserRepository
	links repository.LinkRequestRepository
	queue *Enqueuer
	log   *zap.Logger
	now   func() time.Time
}

// NewLinkService constructs LinkService with required dependencies.
func NewLinkService(users repository.UserRepository, links repository.LinkRequestRepository, queue *Enqueuer, log *zap.Logger) *LinkServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &LinkServiceImpl{users: users, links: links, queue: queue, log: log, now: time.Now}
}

// Request creates a pending request and notifies the partner.
func (s *LinkServiceImpl) Request(ctx context.Context, userID, partnerID uuid.UUID) (uuid.UUID, string, error) {
	if partnerID == uuid.Nil {
		return uuid.Nil, "", errs.New(errs.ErrInvalidArgument, "Partner ID required")
	}
	if partnerID == userID {
		return uuid.Nil, "", errs.New(errs.ErrInvalidArgument, "Cannot link with yourself")
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return uuid.Nil, "", userErr("load user", err)
	}
	partner, err := s.users.GetByID(ctx, partnerID)
	if err != nil {
		return uuid.Nil, "", userErr("load partner", err)
	}
	if user.HasPartner() {
		return uuid.Nil, "", errs.New(errs.ErrAlreadyExists, msgSelfLinked)
	}
	if partner.HasPartner() {
		return uuid.Nil, "", errs.New(errs.ErrAlreadyExists, msgPartnerLinked)
	}
	const msgDuplicate = "You already sent a link request to this person"
	pending, err := s.links.HasPending(ctx, userID, partnerID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("check pending: %w", err)
	}
	if pending {
		return uuid.Nil, "", errs.New(errs.ErrAlreadyExists, msgDuplicate)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, "", err
	}
	now := s.now().UTC()
	req := &model.LinkRequest{
		ID:           id,
		FromUserID:   userID,
		ToUserID:     partnerID,
		FromUserName: user.DisplayName("Someone"),
		ToUserName:   partner.DisplayName("Partner"),
		Status:       model.LinkPending,
		CreatedAt:    now,
		ExpiresAt:    now.Add(LinkRequestTTL),
	}
	if err := s.links.Create(ctx, req); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return uuid.Nil, "", errs.New(errs.ErrAlreadyExists, msgDuplicate)
		}
		return uuid.Nil, "", fmt.Errorf("create request: %w", err)
	}

	s.queue.Enqueue(ctx, model.Notification{
		ToToken:    partner.PushToken,
		FromUserID: userID,
		Title:      "💕 Partner Link Request",
		Body:       req.FromUserName + " wants to link with you!",
		Type:       model.NotifyPartnerLinkRequest,
		RequestID:  id,
	})
	s.log.Info("partner link requested", zap.String("from", userID.String()), zap.String("to", partnerID.String()))
	return id, "Partner link request sent! Waiting for approval.", nil
}

// Accept links both accounts atomically and notifies the requester.
func (s *LinkServiceImpl) Accept(ctx context.Context, userID, requestID uuid.UUID) (AcceptResult, error) {
	req, err := s.pendingFor(ctx, userID, requestID)
	if err != nil {
		return AcceptResult{}, err
	}

	switch err := s.links.Accept(ctx, requestID, s.now().UTC()); {
	case errors.Is(err, errs.ErrVersionConflict):
		return AcceptResult{}, s.resolvedErr(ctx, requestID)
	case errors.Is(err, errs.ErrAlreadyLinked):
		if u, uerr := s.users.GetByID(ctx, userID); uerr == nil && u.HasPartner() {
			return AcceptResult{}, errs.New(errs.ErrFailedPrecondition, msgSelfLinked)
		}
		return AcceptResult{}, errs.New(errs.ErrFailedPrecondition, msgPartnerLinked)
	case errors.Is(err, errs.ErrNotFound):
		return AcceptResult{}, errs.New(errs.ErrNotFound, msgUserNotFound)
	case err != nil:
		return AcceptResult{}, fmt.Errorf("accept request: %w", err)
	}

	if requester, err := s.users.GetByID(ctx, req.FromUserID); err != nil {
		s.log.Warn("load requester for notification", zap.Error(err))
	} else {
		s.queue.Enqueue(ctx, model.Notification{
			ToToken:    requester.PushToken,
			FromUserID: userID,
			Title:      "💕 Partner Linked!",
			Body:       req.ToUserName + " accepted your partner link request!",
			Type:       model.NotifyPartnerLinkAccepted,
			RequestID:  req.ID,
		})
	}
	s.log.Info("partner link accepted", zap.String("user", userID.String()), zap.String("partner", req.FromUserID.String()))
	return AcceptResult{
		PartnerID:   req.FromUserID,
		PartnerName: req.FromUserName,
		Message:     "Partner linked successfully!",
	}, nil
}

// Reject declines a pending request.
func (s *LinkServiceImpl) Reject(ctx context.Context, userID, requestID uuid.UUID) (string, error) {
	if _, err := s.pendingFor(ctx, userID, requestID); err != nil {
		return "", err
	}
	err := s.links.Resolve(ctx, requestID, model.LinkRejected, s.now().UTC())
	if errors.Is(err, errs.ErrVersionConflict) {
		return "", s.resolvedErr(ctx, requestID)
	}
	if err != nil {
		return "", fmt.Errorf("reject request: %w", err)
	}
	return "Partner link request rejected", nil
}

// pendingFor loads requestID and checks it is a live request addressed to
// userID. An expired request is moved to expired on the way.
func (s *LinkServiceImpl) pendingFor(ctx context.Context, userID, requestID uuid.UUID) (*model.LinkRequest, error) {
	if requestID == uuid.Nil {
		return nil, errs.New(errs.ErrInvalidArgument, "Request ID required")
	}
	req, err := s.links.Get(ctx, requestID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.New(errs.ErrNotFound, "Link request not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load request: %w", err)
	}
	if req.ToUserID != userID {
		return nil, errs.New(errs.ErrPermissionDenied, "This request is not for you")
	}
	if req.Status != model.LinkPending {
		return nil, errs.Newf(errs.ErrFailedPrecondition, "Request already %s", req.Status)
	}
	now := s.now().UTC()
	if req.Expired(now) {
		err := s.links.Resolve(ctx, requestID, model.LinkExpired, now)
		if err != nil && !errors.Is(err, errs.ErrVersionConflict) {
			s.log.Warn("expire link request", zap.String("id", requestID.String()), zap.Error(err))
		}
		return nil, errs.New(errs.ErrFailedPrecondition, "Link request expired")
	}
	return req, nil
}

// resolvedErr reports the status a concurrent writer moved the request to.
func (s *LinkServiceImpl) resolvedErr(ctx context.Context, requestID uuid.UUID) error {
	req, err := s.links.Get(ctx, requestID)
	if err != nil {
		return fmt.Errorf("reload request: %w", err)
	}
	return errs.Newf(errs.ErrFailedPrecondition, "Request already %s", req.Status)
}
