package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingItem is one purchased slot inside a payment notification.
type BookingItem struct {
	Beach         string          `json:"beach" validate:"required"`
	LessonDate    string          `json:"lesson_date" validate:"required,datetime=2006-01-02"`
	StartTime     time.Time       `json:"start_time" validate:"required"`
	EndTime       time.Time       `json:"end_time" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	LessonsBooked int             `json:"lessons_booked" validate:"omitempty,min=1"`
	IsPrivate     bool            `json:"is_private"`
}

// PaymentNotificationRequest is the completion notification from the
// payment collaborator. It may be delivered more than once for the same
// payment reference.
type PaymentNotificationRequest struct {
	PaymentRef string          `json:"payment_ref" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Customer   CustomerInfo    `json:"customer" validate:"required"`
	Items      []BookingItem   `json:"items" validate:"required,min=1,dive"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}
