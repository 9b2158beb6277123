package request

import (
	"surf-booking/internal/data/entity"
)

type CustomerInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

type CheckoutRequest struct {
	Items        []entity.CartItem `json:"items" validate:"required,min=1"`
	Customer     CustomerInfo      `json:"customer" validate:"required"`
	DiscountCode string            `json:"discount_code,omitempty"`
}
