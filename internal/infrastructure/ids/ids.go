// Package ids generates node identifiers for the layout engine.
package ids

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bnema/splitview/internal/application/usecase"
)

// shortLen keeps ids readable in logs and the terminal status line.
const shortLen = 8

// NewGenerator returns a generator of random v4 UUIDs.
func NewGenerator() usecase.IDGenerator {
	return uuid.NewString
}

// NewShortGenerator returns ids made of prefix and the first hex digits of a
// random UUID. A generator never hands out the same id twice.
func NewShortGenerator(prefix string) usecase.IDGenerator {
	seen := make(map[string]struct{})
	return func() string {
		for {
			raw := strings.ReplaceAll(uuid.NewString(), "-", "")
			id := prefix + raw[:shortLen]
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			return id
		}
	}
}
