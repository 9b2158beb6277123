package response

import (
	"time"

	"surf-booking/internal/data/entity"
)

type WaiverResponse struct {
	ID         string    `json:"id"`
	SlotID     string    `json:"slot_id"`
	PaymentRef string    `json:"payment_ref"`
	CreatedAt  time.Time `json:"created_at"`
}

// CleanupResponse reports how many orphaned waivers a cleanup run removed.
type CleanupResponse struct {
	Deleted int64 `json:"deleted"`
}

func WaiverToResponse(w *entity.WaiverSignature) WaiverResponse {
	return WaiverResponse{
		ID:         w.ID.String(),
		SlotID:     w.SlotID,
		PaymentRef: w.PaymentRef,
		CreatedAt:  w.CreatedAt,
	}
}
