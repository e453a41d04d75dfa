package ledger

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Kind string

const (
	KindIncome    Kind = "income"
	KindExpense   Kind = "expense"
	KindAsset     Kind = "asset"
	KindLiability Kind = "liability"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindIncome, KindExpense, KindAsset, KindLiability:
		return true
	}
	return false
}

// Entry is one user-recorded financial line item. The ledger backs the
// dashboard's monthly cash-flow summary and pre-fills calculator inputs.
type Entry struct {
	Id         ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId     ulid.ULID `gorm:"type:varchar(26);index:idx_ledger_user_id,priority:1;index:idx_ledger_user_date;not null" json:"userId"`
	Kind       Kind      `gorm:"type:varchar(10);not null;index:idx_ledger_kind" json:"kind"`
	Label      string    `gorm:"type:varchar(100);not null" json:"label"`
	Amount     float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	RecordedAt time.Time `gorm:"type:date;not null;index:idx_ledger_user_date,priority:2" json:"recordedAt"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Entry) TableName() string {
	return "ledger_entries"
}
