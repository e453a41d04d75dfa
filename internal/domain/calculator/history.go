package calculator

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// Snapshot is one immutable calculation: its result (which embeds the inputs
// it was computed from) plus identity and creation time. Snapshots are never
// mutated after they enter history.
type Snapshot struct {
	Id        ulid.ULID   `json:"id"`
	UserId    ulid.ULID   `json:"userId"`
	Kind      Kind        `json:"kind"`
	CreatedAt time.Time   `json:"createdAt"`
	Result    interface{} `json:"result"`
}

// HistoryStore keeps, per user and calculator, the current result slot and the
// append-only history sequence (newest first, unbounded, in memory only).
// Selecting a history entry copies it into the current slot without removing
// it from history.
type HistoryStore interface {
	Append(ctx context.Context, snapshot *Snapshot) error
	List(ctx context.Context, userID ulid.ULID, kind Kind) ([]*Snapshot, error)
	Get(ctx context.Context, userID ulid.ULID, kind Kind, id ulid.ULID) (*Snapshot, error)
	SetCurrent(ctx context.Context, userID ulid.ULID, kind Kind, snapshot *Snapshot) error
	Current(ctx context.Context, userID ulid.ULID, kind Kind) (*Snapshot, error)
	Reset(ctx context.Context, userID ulid.ULID) error
}
