package push

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"

	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/payload"
	"github.com/sideshow/apns2/token"
)

// APNsConfig selects the signing key and environment.
type APNsConfig struct {
	KeyFile    string
	KeyID      string
	TeamID     string
	Topic      string
	Production bool
}

// APNs sends through Apple Push Notification service with token auth.
type APNs struct {
	client *apns2.Client
	topic  string
}

// NewAPNs loads the .p8 key and builds a token-authenticated client.
func NewAPNs(cfg APNsConfig) (*APNs, error) {
	if cfg.KeyFile == "" || cfg.KeyID == "" || cfg.TeamID == "" || cfg.Topic == "" {
		return nil, errors.New("apns: key_file, key_id, team_id and topic are required")
	}
	key, err := token.AuthKeyFromFile(cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("apns key: %w", err)
	}
	client := apns2.NewTokenClient(&token.Token{AuthKey: key, KeyID: cfg.KeyID, TeamID: cfg.TeamID})
	if cfg.Production {
		client = client.Production()
	} else {
		client = client.Development()
	}
	return NewAPNsWithClient(client, cfg.Topic), nil
}

// NewAPNsWithClient wraps a preconfigured client.
func NewAPNsWithClient(client *apns2.Client, topic string) *APNs {
	return &APNs{client: client, topic: topic}
}

// Send pushes m and returns the apns-id. Tokens that are not APNs device
// tokens (FCM registration tokens, for one) fail as BadDeviceToken without
// a round trip.
func (a *APNs) Send(ctx context.Context, m Message) (string, error) {
	if !deviceToken(m.Token) {
		return "", &DeliveryError{Code: apns2.ReasonBadDeviceToken, Status: http.StatusBadRequest}
	}
	p := payload.NewPayload().
		AlertTitle(m.Title).
		AlertBody(m.Body).
		Sound("default").
		Custom("type", m.Type)
	if m.RequestID != "" {
		p = p.Custom("requestId", m.RequestID)
	}
	n := &apns2.Notification{
		DeviceToken: m.Token,
		Topic:       a.topic,
		Payload:     p,
		Priority:    apns2.PriorityHigh,
	}
	res, err := a.client.PushWithContext(ctx, n)
	if err != nil {
		return "", fmt.Errorf("apns push: %w", err)
	}
	if !res.Sent() {
		return "", &DeliveryError{Code: res.Reason, Status: res.StatusCode}
	}
	return res.ApnsID, nil
}

// deviceToken reports whether tok has the hex shape of an APNs device token.
func deviceToken(tok string) bool {
	if tok == "" || len(tok)%2 != 0 {
		return false
	}
	_, err := hex.DecodeString(tok)
	return err == nil
}

func invalidToken(reason string) bool {
	switch reason {
	case apns2.ReasonBadDeviceToken, apns2.ReasonUnregistered, apns2.ReasonDeviceTokenNotForTopic, apns2.ReasonMissingDeviceToken:
		return true
	}
	return false
}
