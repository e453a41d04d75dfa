package contracts

import "time"

type LedgerEntryCreateRequest struct {
	Kind       string     `json:"kind" binding:"required,oneof=income expense asset liability"`
	Label      string     `json:"label" binding:"required"`
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	RecordedAt *time.Time `json:"recordedAt"`
}

type LedgerEntryUpdateRequest struct {
	Kind       string     `json:"kind" binding:"required,oneof=income expense asset liability"`
	Label      string     `json:"label" binding:"required"`
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	RecordedAt *time.Time `json:"recordedAt"`
}
