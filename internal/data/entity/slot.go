package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Slot is one bookable time window as reported by the upstream
// availability provider.
type Slot struct {
	SlotID       string          `json:"slot_id"`
	StartTime    time.Time       `json:"start_time"`
	EndTime      time.Time       `json:"end_time"`
	Label        string          `json:"label"`
	Price        decimal.Decimal `json:"price"`
	OpenSpaces   int             `json:"open_spaces"`
	Available    bool            `json:"available"`
	SkyCondition string          `json:"sky_condition"`
}
