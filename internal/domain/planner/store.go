package planner

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// SessionStore holds at most one live session per user. Implementations are
// in-memory only: planner sessions are never persisted and vanish with the
// process, matching the session lifecycle of the wizard.
//
// Concurrent requests for the same user may read and mutate the same session,
// so the stored session is never handed out directly: GetOrCreate and Get
// return copies, and all mutation goes through Update, which runs apply under
// the store's lock and returns a copy of the result.
type SessionStore interface {
	GetOrCreate(ctx context.Context, userID ulid.ULID) (*Session, error)
	Get(ctx context.Context, userID ulid.ULID) (*Session, error)
	Update(ctx context.Context, userID ulid.ULID, apply func(*Session) error) (*Session, error)
	Delete(ctx context.Context, userID ulid.ULID) error
}
