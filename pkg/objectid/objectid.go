// Package objectid generates and validates the 24-character hexadecimal
// identifiers used for every stored record.
package objectid

import (
	"encoding/hex"
	"regexp"

	"github.com/google/uuid"
)

// Length is the number of hex characters in an identifier.
const Length = 24

var pattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// New returns a fresh random identifier.
func New() string {
	u := uuid.New()
	return hex.EncodeToString(u[:Length/2])
}

// Valid reports whether s has the identifier shape.
func Valid(s string) bool {
	return pattern.MatchString(s)
}
