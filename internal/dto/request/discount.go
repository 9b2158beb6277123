package request

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateDiscountRequest struct {
	Code        string          `json:"code" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=percentage fixed"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description"`
	MinOrder    decimal.Decimal `json:"min_order"`
	MaxUses     *int            `json:"max_uses,omitempty" validate:"omitempty,min=1"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
}

// UpdateDiscountRequest carries only the fields to change; nil fields are
// left untouched.
type UpdateDiscountRequest struct {
	Type        *string          `json:"type,omitempty" validate:"omitempty,oneof=percentage fixed"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	MinOrder    *decimal.Decimal `json:"min_order,omitempty"`
	MaxUses     *int             `json:"max_uses,omitempty" validate:"omitempty,min=1"`
	ExpiresAt   *time.Time       `json:"expires_at,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

type ValidateDiscountRequest struct {
	Code        string          `json:"code" validate:"required"`
	OrderAmount decimal.Decimal `json:"order_amount"`
}
