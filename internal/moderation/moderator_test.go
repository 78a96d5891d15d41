package moderation

import (
	"strings"
	"testing"

	"github.com/dareus/dareguard/internal/policy"
	"github.com/stretchr/testify/require"
)

func newModerator(t *testing.T) *Moderator {
	t.Helper()
	c, err := policy.Default()
	require.NoError(t, err)
	m, err := New(c.Moderation)
	require.NoError(t, err)
	return m
}

func TestModerate_Accepts(t *testing.T) {
	t.Parallel()
	m := newModerator(t)

	for _, text := range []string{
		"  Give your partner a back massage tonight  ",
		"Cook dinner together this weekend",
		"Try to jump off the couch",
	} {
		v := m.Moderate(text, false)
		require.True(t, v.Valid, "%q: %v", text, v.Errors)
		require.Equal(t, strings.TrimSpace(text), v.Cleaned)
		require.Equal(t, MsgAcceptable, v.Message())
	}
}

func TestModerate_Rejects(t *testing.T) {
	t.Parallel()
	m := newModerator(t)

	cases := []struct {
		name   string
		text   string
		custom bool
		first  string
		has    []string
	}{
		{name: "url", text: "Buy now at www.spam.com", first: MsgURL},
		{name: "spaced pattern", text: "k i l l him", first: MsgProfanity},
		{name: "short after trim", text: " ok ", first: MsgTooShort},
		{name: "empty", text: "   ", first: MsgEmpty, has: []string{MsgTooShort}},
		{name: "too long", text: strings.Repeat("a", MaxLength+1), first: MsgTooLong},
		{name: "lexicon", text: "You are such a bastard", first: MsgProfanity},
		{name: "leet normalized", text: "F u c k !!", first: MsgProfanity},
		{name: "phone", text: "Call me at 555-123-4567", first: MsgPhone},
		{name: "email and url", text: "Write to me@example.org", first: MsgURL, has: []string{MsgEmail}},
		{name: "special", text: "!!!???***hello", first: MsgSpecial},
		{name: "caps", text: "DO THIS RIGHT NOW PLEASE", first: MsgCaps},
		{name: "dangerous custom", text: "Try to jump off the couch", custom: true, first: MsgDangerous},
		{name: "whole word xxx", text: "Send me xxx tonight", first: MsgProfanity},
	}
	for _, tc := range cases {
		v := m.Moderate(tc.text, tc.custom)
		require.False(t, v.Valid, tc.name)
		require.Empty(t, v.Cleaned, tc.name)
		require.Equal(t, tc.first, v.Message(), tc.name)
		for _, h := range tc.has {
			require.Contains(t, v.Errors, h, tc.name)
		}
	}
}

func TestModerate_CollectsAllErrorsInOrder(t *testing.T) {
	t.Parallel()
	m := newModerator(t)

	v := m.Moderate("porn at www.x.com or 555 123 4567", false)
	require.Equal(t, []string{MsgProfanity, MsgURL, MsgPhone}, v.Errors)
}

func TestModerate_LexiconIsWholeWord(t *testing.T) {
	t.Parallel()
	m := newModerator(t)

	// "ass" is in the lexicon, "massage" must pass.
	v := m.Moderate("Book a couples massage", false)
	require.True(t, v.Valid, v.Errors)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "shitass", Normalize("$H1T @ss"))
	require.Equal(t, "fuck", Normalize("f.u.c.k"))
	require.Equal(t, "", Normalize(" ?!"))
}

func TestNew_BadPattern(t *testing.T) {
	t.Parallel()

	_, err := New(policy.ModerationRules{ExplicitPatterns: []string{"("}})
	require.Error(t, err)
}
