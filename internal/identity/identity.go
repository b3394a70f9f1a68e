// Package identity generates and checks short record identifiers.
package identity

import (
	"encoding/hex"
	"regexp"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/satchel/internal/store"
)

// idPattern matches a generated short ID: 8 lowercase hex characters.
var idPattern = regexp.MustCompile(`^[0-9a-f]{8}$`)

// NewID returns a random 8-character lowercase hexadecimal identifier,
// the leading hex of a random UUID. Collision probability at single-user
// scale is accepted as negligible; there is no retry loop. Collisions are
// only caught when a caller supplies a custom ID.
func NewID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:4])
}

// IsGenerated reports whether id has the shape of a generated short ID.
func IsGenerated(id string) bool {
	return idPattern.MatchString(id)
}

// Exists reports whether id belongs to any record in the collection.
// Full scan; the store keeps no index.
func Exists[R store.Record](id string, records []R) bool {
	for _, r := range records {
		if r.RecordID() == id {
			return true
		}
	}
	return false
}
