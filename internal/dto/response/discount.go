package response

import (
	"time"

	"github.com/shopspring/decimal"

	"surf-booking/internal/data/entity"
)

type DiscountResponse struct {
	ID          string              `json:"id"`
	Code        string              `json:"code"`
	Type        entity.DiscountType `json:"type"`
	Amount      decimal.Decimal     `json:"amount"`
	Description string              `json:"description,omitempty"`
	MinOrder    decimal.Decimal     `json:"min_order"`
	MaxUses     *int                `json:"max_uses,omitempty"`
	CurrentUses int                 `json:"current_uses"`
	ExpiresAt   *time.Time          `json:"expires_at,omitempty"`
	Active      bool                `json:"active"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ValidateDiscountResponse is the outcome of a read-only code check.
// Reason is set only when Valid is false.
type ValidateDiscountResponse struct {
	Valid          bool                         `json:"valid"`
	Reason         entity.DiscountInvalidReason `json:"reason,omitempty"`
	Discount       *DiscountResponse            `json:"discount,omitempty"`
	DiscountAmount *decimal.Decimal             `json:"discount_amount,omitempty"`
}

func DiscountToResponse(d *entity.DiscountCode) DiscountResponse {
	return DiscountResponse{
		ID:          d.ID.String(),
		Code:        d.Code,
		Type:        d.Type,
		Amount:      d.Amount,
		Description: d.Description,
		MinOrder:    d.MinOrder,
		MaxUses:     d.MaxUses,
		CurrentUses: d.CurrentUses,
		ExpiresAt:   d.ExpiresAt,
		Active:      d.Active,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
