package id

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	reUUID  = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
// Used for X-Request-Id and as a client idempotency key.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Valid accepts a NewID32 value or an RFC 4122 UUID, case-insensitively.
func Valid(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return reHex32.MatchString(s) || reUUID.MatchString(s)
}
