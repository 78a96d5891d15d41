package service

import (
	"context"
	"testing"
	"time"

	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
)

func newLinks(h *harness) *LinkServiceImpl {
	s := NewLinkService(h.store.Users(), h.store.Links(), h.queue, h.log)
	s.now = h.clock
	return s
}

func TestLinks_RequestValidation(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	s := newLinks(h)
	ctx := context.Background()
	a := h.addUser(t, "Sam", "tok-a")
	b := h.addUser(t, "Alex", "tok-b")
	linked := h.addUser(t, "Lee", "", func(u *model.User) { u.PartnerID = newID() })

	_, _, err := s.Request(ctx, a, uuid.Nil)
	requireErr(t, err, errs.ErrInvalidArgument, "Partner ID required")
	_, _, err = s.Request(ctx, a, a)
	requireErr(t, err, errs.ErrInvalidArgument, "Cannot link with yourself")
	_, _, err = s.Request(ctx, a, newID())
	requireErr(t, err, errs.ErrNotFound, "User not found")
	_, _, err = s.Request(ctx, linked, b)
	requireErr(t, err, errs.ErrAlreadyExists, "You are already linked with a partner. Unlink first.")
	_, _, err = s.Request(ctx, a, linked)
	requireErr(t, err, errs.ErrAlreadyExists, "This person is already linked with someone else")
	require.Empty(t, h.store.Notifications().All())
}

func TestLinks_RequestNotifiesPartner(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	s := newLinks(h)
	ctx := context.Background()
	a := h.addUser(t, "Sam", "tok-a")
	b := h.addUser(t, "Alex", "tok-b")

	id, msg, err := s.Request(ctx, a, b)
	require.NoError(t, err)
	require.Equal(t, "Partner link request sent! Waiting for approval.", msg)

	req, err := h.store.Links().Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, model.LinkPending, req.Status)
	require.Equal(t, "Sam", req.FromUserName)
	require.Equal(t, "Alex", req.ToUserName)
	require.Equal(t, t0.Add(7*24*time.Hour), req.ExpiresAt)

	notes := h.store.Notifications().All()
	require.Len(t, notes, 1)
	require.Equal(t, "tok-b", notes[0].ToToken)
	require.Equal(t, "Sam wants to link with you!", notes[0].Body)
	require.Equal(t, model.NotifyPartnerLinkRequest, notes[0].Type)
	require.Equal(t, id, notes[0].RequestID)
	require.Equal(t, a, notes[0].FromUserID)

	_, _, err = s.Request(ctx, a, b)
	requireErr(t, err, errs.ErrAlreadyExists, "You already sent a link request to this person")

	// The reverse direction is a separate request.
	_, _, err = s.Request(ctx, b, a)
	require.NoError(t, err)
}

func TestLinks_RequestWithoutPushToken(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	s := newLinks(h)
	a := h.addUser(t, "", "")
	b := h.addUser(t, "Alex", "")

	id, _, err := s.Request(context.Background(), a, b)
	require.NoError(t, err)
	require.Empty(t, h.store.Notifications().All())
	req, err := h.store.Links().Get(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Someone", req.FromUserName)
}

func TestLinks_AcceptLinksBoth(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	s := newLinks(h)
	ctx := context.Background()
	a := h.addUser(t, "Sam", "tok-a")
	b := h.addUser(t, "Alex", "")
	id, _, err := s.Request(ctx, a, b)
	require.NoError(t, err)

	_, err = s.Accept(ctx, a, id)
	requireErr(t, err, errs.ErrPermissionDenied, "This request is not for you")
	_, err = s.Accept(ctx, b, uuid.Nil)
	requireErr(t, err, errs.ErrInvalidArgument, "Request ID required")
	_, err = s.Accept(ctx, b, newID())
	requireErr(t, err, errs.ErrNotFound, "Link request not found")

	h.advance(time.Hour)
	res, err := s.Accept(ctx, b, id)
	require.NoError(t, err)
	require.Equal(t, a, res.PartnerID)
	require.Equal(t, "Sam", res.PartnerName)
	require.Equal(t, "Partner linked successfully!", res.Message)

	ua, ub := h.user(t, a), h.user(t, b)
	require.Equal(t, b, ua.PartnerID)
	require.Equal(t, a, ub.PartnerID)
	require.Equal(t, t0.Add(time.Hour), ua.PartnerLinkedAt)

	var accepted []model.Notification
	for _, n := range h.store.Notifications().All() {
		if n.Type == model.NotifyPartnerLinkAccepted {
			accepted = append(accepted, n)
		}
	}
	require.Len(t, accepted, 1)
	require.Equal(t, "tok-a", accepted[0].ToToken)
	require.Equal(t, "Alex accepted your partner link request!", accepted[0].Body)

	_, err = s.Accept(ctx, b, id)
	requireErr(t, err, errs.ErrFailedPrecondition, "Request already accepted")
}

func TestLinks_AcceptWhenAlreadyLinked(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	s := newLinks(h)
	ctx := context.Background()
	a := h.addUser(t, "Sam", "")
	b := h.addUser(t, "Alex", "")
	c := h.addUser(t, "Lee", "")

	fromA, _, err := s.Request(ctx, a, b)
	require.NoError(t, err)
	fromC, _, err := s.Request(ctx, c, b)
	require.NoError(t, err)
	fromCToA, _, err := s.Request(ctx, c, a)
	require.NoError(t, err)

	_, err = s.Accept(ctx, b, fromA)
	require.NoError(t, err)

	// b now has a partner.
	_, err = s.Accept(ctx, b, fromC)
	requireErr(t, err, errs.ErrFailedPrecondition, "You are already linked with a partner. Unlink first.")

	// a accepts, but a is also linked.
	_, err = s.Accept(ctx, a, fromCToA)
	requireErr(t, err, errs.ErrFailedPrecondition, "You are already linked with a partner. Unlink first.")

	req, err := h.store.Links().Get(ctx, fromC)
	require.NoError(t, err)
	require.Equal(t, model.LinkPending, req.Status)
}

func TestLinks_AcceptRequesterLinkedElsewhere(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	s := newLinks(h)
	ctx := context.Background()
	a := h.addUser(t, "Sam", "")
	b := h.addUser(t, "Alex", "")
	c := h.addUser(t, "Lee", "")

	aToB, _, err := s.Request(ctx, a, b)
	require.NoError(t, err)
	aToC, _, err := s.Request(ctx, a, c)
	require.NoError(t, err)
	_, err = s.Accept(ctx, c, aToC)
	require.NoError(t, err)

	_, err = s.Accept(ctx, b, aToB)
	requireErr(t, err, errs.ErrFailedPrecondition, "This person is already linked with someone else")
	require.False(t, h.user(t, b).HasPartner())
}

func TestLinks_ExpiredRequest(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	s := newLinks(h)
	ctx := context.Background()
	a := h.addUser(t, "Sam", "")
	b := h.addUser(t, "Alex", "")
	id, _, err := s.Request(ctx, a, b)
	require.NoError(t, err)

	h.advance(7*24*time.Hour + time.Second)
	_, err = s.Accept(ctx, b, id)
	requireErr(t, err, errs.ErrFailedPrecondition, "Link request expired")

	req, err := h.store.Links().Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, model.LinkExpired, req.Status)
	require.False(t, h.user(t, b).HasPartner())

	_, err = s.Reject(ctx, b, id)
	requireErr(t, err, errs.ErrFailedPrecondition, "Request already expired")

	// Once expired, a fresh request is allowed.
	_, _, err = s.Request(ctx, a, b)
	require.NoError(t, err)
}

func TestLinks_Reject(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	s := newLinks(h)
	ctx := context.Background()
	a := h.addUser(t, "Sam", "")
	b := h.addUser(t, "Alex", "")
	id, _, err := s.Request(ctx, a, b)
	require.NoError(t, err)

	_, err = s.Reject(ctx, a, id)
	requireErr(t, err, errs.ErrPermissionDenied, "This request is not for you")

	msg, err := s.Reject(ctx, b, id)
	require.NoError(t, err)
	require.Equal(t, "Partner link request rejected", msg)

	_, err = s.Accept(ctx, b, id)
	requireErr(t, err, errs.ErrFailedPrecondition, "Request already rejected")
	require.False(t, h.user(t, a).HasPartner())
}
