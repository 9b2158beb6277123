package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipientInfo is set when someone books a lesson for another person.
type RecipientInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CartItem is one selectable lesson slot inside a cart. Items keep their
// insertion order; the pricing tier depends on position, not on the item
// itself.
type CartItem struct {
	Beach           string           `json:"beach"`
	Date            string           `json:"date"`
	Time            string           `json:"time"`
	StartTime       time.Time        `json:"start_time"`
	EndTime         time.Time        `json:"end_time"`
	Conditions      string           `json:"conditions,omitempty"`
	Weather         string           `json:"weather,omitempty"`
	Price           decimal.Decimal  `json:"price"`
	IsPrivate       bool             `json:"is_private"`
	WetsuitSize     string           `json:"wetsuit_size,omitempty"`
	SlotID          string           `json:"slot_id,omitempty"`
	OpenSpaces      *int             `json:"open_spaces,omitempty"`
	Available       *bool            `json:"available,omitempty"`
	BookingFor      *RecipientInfo   `json:"booking_for,omitempty"`
	DiscountedPrice *decimal.Decimal `json:"discounted_price,omitempty"`
}
