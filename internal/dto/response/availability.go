package response

import (
	"surf-booking/internal/data/entity"
)

type AvailabilityResponse struct {
	Beach string        `json:"beach"`
	Date  string        `json:"date"`
	Slots []entity.Slot `json:"slots"`
}

// CacheStatsResponse reports cache diagnostics for the admin surface.
type CacheStatsResponse struct {
	Entries      int `json:"entries"`
	ValidEntries int `json:"valid_entries"`
}
