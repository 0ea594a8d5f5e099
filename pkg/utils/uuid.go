package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// NewLineID generates a cart line identifier. Uniqueness within a cart's
// lifetime is the only contract; ordering carries no meaning.
func NewLineID() string {
	return uuid.New().String()
}

// GenerateTransactionNo generates a human-readable transaction number
func GenerateTransactionNo() string {
	return "TRX-" + strings.ToUpper(uuid.New().String()[:8])
}
