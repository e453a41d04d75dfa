package ledger

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, entryID ulid.ULID) error
	GetByID(ctx context.Context, entryID ulid.ULID) (*Entry, error)
	GetByIDAndUser(ctx context.Context, entryID, userID ulid.ULID) (*Entry, error)
	GetAll(ctx context.Context, userID ulid.ULID, kind *Kind, pagination *pkg.PaginationParams) ([]*Entry, int64, error)
	SumByKind(ctx context.Context, userID ulid.ULID, kind Kind, from, to time.Time) (float64, error)
}
