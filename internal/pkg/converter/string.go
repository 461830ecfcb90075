// Package converter holds small conversion helpers shared by handlers.
package converter

import (
	"github.com/google/uuid"
)

// StrToUUID parses an identifier carried as a string, such as a JWT
// subject claim. Malformed input maps to uuid.Nil so callers can treat
// it as an unauthenticated actor.
func StrToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
