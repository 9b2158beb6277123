package response

import (
	"time"

	"github.com/shopspring/decimal"

	"surf-booking/internal/data/entity"
)

type BookingResponse struct {
	ID                 string               `json:"id"`
	ConfirmationNumber string               `json:"confirmation_number"`
	PaymentRef         string               `json:"payment_ref"`
	ItemIndex          int                  `json:"item_index"`
	CustomerName       string               `json:"customer_name"`
	CustomerEmail      string               `json:"customer_email"`
	CustomerPhone      string               `json:"customer_phone,omitempty"`
	Beach              string               `json:"beach"`
	LessonDate         string               `json:"lesson_date"`
	StartTime          time.Time            `json:"start_time"`
	EndTime            time.Time            `json:"end_time"`
	Price              decimal.Decimal      `json:"price"`
	LessonsBooked      int                  `json:"lessons_booked"`
	IsPrivate          bool                 `json:"is_private"`
	Status             entity.BookingStatus `json:"status"`
	CreatedAt          time.Time            `json:"created_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID.String(),
		ConfirmationNumber: b.ConfirmationNumber,
		PaymentRef:         b.PaymentRef,
		ItemIndex:          b.ItemIndex,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		Beach:              b.Beach,
		LessonDate:         b.LessonDate.Format("2006-01-02"),
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		Price:              b.Price,
		LessonsBooked:      b.LessonsBooked,
		IsPrivate:          b.IsPrivate,
		Status:             b.Status,
		CreatedAt:          b.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingToResponse(b)
	}
	return out
}
