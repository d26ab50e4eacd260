package models

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID generates a prefixed short id, e.g. "item_9f8a3c2b1d0e".
func NewID(prefix string) string {
	return prefix + "_" + randomHex(12)
}

// NewSessionToken generates an unguessable session token. The prefix keeps
// tokens recognizable in logs and cookies.
func NewSessionToken() string {
	return "session_" + randomHex(32)
}

func randomHex(n int) string {
	u := uuid.New()
	s := hex.EncodeToString(u[:])
	for len(s) < n {
		u = uuid.New()
		s += hex.EncodeToString(u[:])
	}
	return s[:n]
}
