// Package crypto implements server-side randomness for invite codes.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
)

// InviteAlphabet omits 0, O, 1 and I so codes survive being read aloud.
const InviteAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// InviteCodeLen is the length of every invite code.
const InviteCodeLen = 12

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// NewInviteCode returns a random code over InviteAlphabet. The alphabet has
// 32 symbols, so byte%32 is unbiased.
func NewInviteCode() (string, error) {
	b, err := RandBytes(InviteCodeLen)
	if err != nil {
		return "", err
	}
	for i := range b {
		b[i] = InviteAlphabet[int(b[i])%len(InviteAlphabet)]
	}
	return string(b), nil
}

// EqualToken compares two shared secrets in constant time.
func EqualToken(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
