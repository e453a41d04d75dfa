package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/ledger"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

type LedgerRepository struct {
	DB *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{DB: db}
}

type ledgerEntryDB struct {
	Id         string    `gorm:"type:varchar(26);primaryKey"`
	UserId     string    `gorm:"type:varchar(26);index:idx_ledger_user_id,priority:1;index:idx_ledger_user_date;not null"`
	Kind       string    `gorm:"type:varchar(10);not null;index:idx_ledger_kind"`
	Label      string    `gorm:"type:varchar(100);not null"`
	Amount     float64   `gorm:"type:decimal(15,2);not null"`
	RecordedAt time.Time `gorm:"type:date;not null;index:idx_ledger_user_date,priority:2"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;not null"`
}

func (ledgerEntryDB) TableName() string {
	return "ledger_entries"
}

func toDomainLedgerEntry(edb *ledgerEntryDB) (*ledger.Entry, error) {
	id, err := pkg.ParseULID(edb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	userID, err := pkg.ParseULID(edb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &ledger.Entry{
		Id:         id,
		UserId:     userID,
		Kind:       ledger.Kind(edb.Kind),
		Label:      edb.Label,
		Amount:     edb.Amount,
		RecordedAt: edb.RecordedAt,
		CreatedAt:  edb.CreatedAt,
		UpdatedAt:  edb.UpdatedAt,
	}, nil
}

func toDBLedgerEntry(entry *ledger.Entry) *ledgerEntryDB {
	return &ledgerEntryDB{
		Id:         entry.Id.String(),
		UserId:     entry.UserId.String(),
		Kind:       string(entry.Kind),
		Label:      entry.Label,
		Amount:     entry.Amount,
		RecordedAt: entry.RecordedAt,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}
}

func (r *LedgerRepository) Create(ctx context.Context, entry *ledger.Entry) error {
	edb := toDBLedgerEntry(entry)
	if err := r.DB.WithContext(ctx).Table("ledger_entries").Create(edb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *LedgerRepository) Update(ctx context.Context, entry *ledger.Entry) error {
	edb := toDBLedgerEntry(entry)
	if err := r.DB.WithContext(ctx).Table("ledger_entries").Where("id = ?", edb.Id).Updates(edb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *LedgerRepository) Delete(ctx context.Context, entryID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("ledger_entries").Where("id = ?", entryID.String()).Delete(&ledgerEntryDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrEntryNotFound
	}
	return nil
}

func (r *LedgerRepository) GetByID(ctx context.Context, entryID ulid.ULID) (*ledger.Entry, error) {
	var edb ledgerEntryDB
	if err := r.DB.WithContext(ctx).Table("ledger_entries").Where("id = ?", entryID.String()).First(&edb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrEntryNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainLedgerEntry(&edb)
}

func (r *LedgerRepository) GetByIDAndUser(ctx context.Context, entryID, userID ulid.ULID) (*ledger.Entry, error) {
	var edb ledgerEntryDB
	if err := r.DB.WithContext(ctx).
		Table("ledger_entries").
		Where("id = ? AND user_id = ?", entryID.String(), userID.String()).
		First(&edb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrEntryNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainLedgerEntry(&edb)
}

func (r *LedgerRepository) GetAll(ctx context.Context, userID ulid.ULID, kind *ledger.Kind, pagination *pkg.PaginationParams) ([]*ledger.Entry, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	query := r.DB.WithContext(ctx).
		Table("ledger_entries").
		Where("user_id = ?", userID.String())
	if kind != nil {
		query = query.Where("kind = ?", string(*kind))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []ledgerEntryDB
	if err := query.
		Order("recorded_at DESC, created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	entries := make([]*ledger.Entry, 0, len(rows))
	for i := range rows {
		entry, err := toDomainLedgerEntry(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}
	return entries, total, nil
}

func (r *LedgerRepository) SumByKind(ctx context.Context, userID ulid.ULID, kind ledger.Kind, from, to time.Time) (float64, error) {
	var total float64
	query := r.DB.WithContext(ctx).
		Table("ledger_entries").
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND kind = ?", userID.String(), string(kind))
	if !from.IsZero() {
		query = query.Where("recorded_at >= ?", from)
	}
	query = query.Where("recorded_at < ?", to)

	if err := query.Scan(&total).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}
