package market

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

type Interval string

const (
	IntervalDaily   Interval = "daily"
	IntervalWeekly  Interval = "weekly"
	IntervalMonthly Interval = "monthly"
)

func (i Interval) IsValid() bool {
	switch i {
	case IntervalDaily, IntervalWeekly, IntervalMonthly:
		return true
	}
	return false
}

type OutputSize string

const (
	OutputCompact OutputSize = "compact"
	OutputFull    OutputSize = "full"
)

type PricePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type Metadata struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	LastRefreshed string `json:"lastRefreshed"`
	TimeZone      string `json:"timeZone"`
}

// TimeSeries is one symbol's price history. Fallback marks a locally
// synthesized series substituted after a provider failure.
type TimeSeries struct {
	Metadata      Metadata     `json:"metadata"`
	Data          []PricePoint `json:"data"`
	ChangePercent float64      `json:"changePercent"`
	Fallback      bool         `json:"fallback"`
}

// DataProvider is the outbound market-data collaborator.
type DataProvider interface {
	FetchTimeSeries(ctx context.Context, symbol string, interval Interval, outputSize OutputSize) (*TimeSeries, error)
}

type WatchlistItem struct {
	Id      ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId  ulid.ULID `gorm:"type:varchar(26);index:idx_watchlist_user;uniqueIndex:idx_watchlist_user_symbol;not null" json:"userId"`
	Symbol  string    `gorm:"type:varchar(20);uniqueIndex:idx_watchlist_user_symbol;not null" json:"symbol"`
	Name    string    `gorm:"type:varchar(100)" json:"name"`
	AddedAt time.Time `gorm:"autoCreateTime;not null" json:"addedAt"`
}

func (WatchlistItem) TableName() string {
	return "watchlist_items"
}

type WatchlistRepository interface {
	Add(ctx context.Context, item *WatchlistItem) error
	Remove(ctx context.Context, userID ulid.ULID, symbol string) error
	ListByUser(ctx context.Context, userID ulid.ULID) ([]*WatchlistItem, error)
	CountByUser(ctx context.Context, userID ulid.ULID) (int64, error)
	ListSymbols(ctx context.Context) ([]string, error)
}
