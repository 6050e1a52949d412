// File: services/session/interface.go
package session

import (
	"context"
	"time"

	"paguro/models"
)

// DefaultTTL is how long the last availability result set of a session
// stays resolvable, measured from the last write.
const DefaultTTL = 30 * time.Minute

// Store keeps the last availability result set per conversation
// session. Entries expire after a TTL measured from the last write;
// Put replaces any prior entry wholesale. Implementations must make
// the check-read-write on one session atomic with respect to
// concurrent requests for the same session.
type Store interface {
	Put(ctx context.Context, sessionID string, weeks []models.AvailabilityWeek) error
	// Get returns the stored result set, or nil when the session is
	// absent or expired; callers cannot tell the two apart.
	Get(ctx context.Context, sessionID string) ([]models.AvailabilityWeek, error)
	// Resolve returns the week stored at the given 1-based index.
	// Returns ErrNoPriorResults when the session has no result set and
	// an IndexOutOfRangeError naming the valid bound otherwise.
	Resolve(ctx context.Context, sessionID string, index int) (*models.AvailabilityWeek, error)
}
