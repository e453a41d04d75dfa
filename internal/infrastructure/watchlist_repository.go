package infrastructure

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/market"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

type WatchlistRepository struct {
	DB *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) *WatchlistRepository {
	return &WatchlistRepository{DB: db}
}

type watchlistItemDB struct {
	Id      string    `gorm:"type:varchar(26);primaryKey"`
	UserId  string    `gorm:"type:varchar(26);index:idx_watchlist_user;uniqueIndex:idx_watchlist_user_symbol;not null"`
	Symbol  string    `gorm:"type:varchar(20);uniqueIndex:idx_watchlist_user_symbol;not null"`
	Name    string    `gorm:"type:varchar(100)"`
	AddedAt time.Time `gorm:"autoCreateTime;not null"`
}

func (watchlistItemDB) TableName() string {
	return "watchlist_items"
}

func toDomainWatchlistItem(idb *watchlistItemDB) (*market.WatchlistItem, error) {
	id, err := pkg.ParseULID(idb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	userID, err := pkg.ParseULID(idb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &market.WatchlistItem{
		Id:      id,
		UserId:  userID,
		Symbol:  idb.Symbol,
		Name:    idb.Name,
		AddedAt: idb.AddedAt,
	}, nil
}

func toDBWatchlistItem(item *market.WatchlistItem) *watchlistItemDB {
	return &watchlistItemDB{
		Id:      item.Id.String(),
		UserId:  item.UserId.String(),
		Symbol:  item.Symbol,
		Name:    item.Name,
		AddedAt: item.AddedAt,
	}
}

func (r *WatchlistRepository) Add(ctx context.Context, item *market.WatchlistItem) error {
	idb := toDBWatchlistItem(item)
	if err := r.DB.WithContext(ctx).Table("watchlist_items").Create(idb).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return appErrors.NewConflictError("watchlist symbol")
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *WatchlistRepository) Remove(ctx context.Context, userID ulid.ULID, symbol string) error {
	result := r.DB.WithContext(ctx).
		Table("watchlist_items").
		Where("user_id = ? AND symbol = ?", userID.String(), symbol).
		Delete(&watchlistItemDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrSymbolNotWatched
	}
	return nil
}

func (r *WatchlistRepository) ListByUser(ctx context.Context, userID ulid.ULID) ([]*market.WatchlistItem, error) {
	var rows []watchlistItemDB
	if err := r.DB.WithContext(ctx).
		Table("watchlist_items").
		Where("user_id = ?", userID.String()).
		Order("added_at ASC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	items := make([]*market.WatchlistItem, 0, len(rows))
	for i := range rows {
		item, err := toDomainWatchlistItem(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *WatchlistRepository) CountByUser(ctx context.Context, userID ulid.ULID) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).
		Table("watchlist_items").
		Where("user_id = ?", userID.String()).
		Count(&count).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (r *WatchlistRepository) ListSymbols(ctx context.Context) ([]string, error) {
	var symbols []string
	if err := r.DB.WithContext(ctx).
		Table("watchlist_items").
		Distinct("symbol").
		Order("symbol ASC").
		Pluck("symbol", &symbols).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return symbols, nil
}
