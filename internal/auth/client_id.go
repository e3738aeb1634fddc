package auth

import (
	"strings"

	"github.com/google/uuid"
)

const clientIDPrefix = "client_"

// NewClientID returns a fresh per-login session identifier: a recognizable
// prefix followed by 128 bits of randomness as bare hex. Uniqueness relies on
// the identifier space, not on collision checks.
func NewClientID() string {
	return clientIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
