package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// CanTransitionTo reports whether a status change is legal. Confirmed
// bookings may complete or cancel; completed and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s != BookingStatusConfirmed {
		return false
	}
	return next == BookingStatusCompleted || next == BookingStatusCancelled
}

// Booking is one purchased lesson slot. A single payment may fund several
// slots, producing several rows sharing one payment reference and one
// confirmation number; ItemIndex is the slot's position within that payment.
type Booking struct {
	Base
	ConfirmationNumber string          `db:"confirmation_number"`
	PaymentRef         string          `db:"payment_ref"`
	ItemIndex          int             `db:"item_index"`
	CustomerName       string          `db:"customer_name"`
	CustomerEmail      string          `db:"customer_email"`
	CustomerPhone      string          `db:"customer_phone"`
	Beach              string          `db:"beach"`
	LessonDate         time.Time       `db:"lesson_date"`
	StartTime          time.Time       `db:"start_time"`
	EndTime            time.Time       `db:"end_time"`
	Price              decimal.Decimal `db:"price"`
	LessonsBooked      int             `db:"lessons_booked"`
	IsPrivate          bool            `db:"is_private"`
	Status             BookingStatus   `db:"status"`
}
