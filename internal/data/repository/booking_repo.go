package repository

import (
	"context"
	"fmt"
	"time"

	"surf-booking/internal/data/entity"
	"surf-booking/pkg/database"
	"surf-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateAll inserts every booking of one payment in a single
	// transaction. Returns utils.ErrConflict when another insert for the
	// same payment reference won the race.
	CreateAll(ctx context.Context, bookings []*entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByPaymentRef(ctx context.Context, paymentRef string) ([]*entity.Booking, error)
	FindByConfirmationNumber(ctx context.Context, confirmation string) ([]*entity.Booking, error)
	FindByDateRange(ctx context.Context, start, end time.Time, limit, offset int) ([]*entity.Booking, error)
	CountByDateRange(ctx context.Context, start, end time.Time) (int64, error)

	// UpdateStatusIf changes status only when the current status matches,
	// returning false when the row was absent or in another state.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, confirmation_number, payment_ref, item_index, customer_name, customer_email, customer_phone, beach, lesson_date, start_time, end_time, price, lessons_booked, is_private, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.ConfirmationNumber,
		&b.PaymentRef,
		&b.ItemIndex,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.Beach,
		&b.LessonDate,
		&b.StartTime,
		&b.EndTime,
		&b.Price,
		&b.LessonsBooked,
		&b.IsPrivate,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) CreateAll(ctx context.Context, bookings []*entity.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking insert: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	for _, b := range bookings {
		_, err := tx.Exec(ctx, query,
			b.ID,
			b.ConfirmationNumber,
			b.PaymentRef,
			b.ItemIndex,
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.Beach,
			b.LessonDate,
			b.StartTime,
			b.EndTime,
			b.Price,
			b.LessonsBooked,
			b.IsPrivate,
			b.Status,
			b.CreatedAt,
			b.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				// Another notification for this payment got here first.
				return fmt.Errorf("bookings for payment %s: %w", b.PaymentRef, utils.ErrConflict)
			}
			r.log.Error("Failed to insert booking",
				zap.Error(err),
				zap.String("payment_ref", b.PaymentRef),
				zap.Int("item_index", b.ItemIndex),
			)
			return fmt.Errorf("insert booking for payment %s: %w", b.PaymentRef, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking insert: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return b, nil
}

func (r *bookingRepository) FindByPaymentRef(ctx context.Context, paymentRef string) ([]*entity.Booking, error) {
	// Creation-time order, item_index as tiebreaker within one payment.
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE payment_ref = $1
		ORDER BY created_at, item_index
	`

	return r.queryBookings(ctx, query, "payment_ref", paymentRef)
}

func (r *bookingRepository) FindByConfirmationNumber(ctx context.Context, confirmation string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE confirmation_number = $1
		ORDER BY created_at, item_index
	`

	return r.queryBookings(ctx, query, "confirmation_number", confirmation)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query, field, value string) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, value)
	if err != nil {
		r.log.Error("Failed to query bookings",
			zap.Error(err),
			zap.String(field, value),
		)
		return nil, fmt.Errorf("find bookings by %s %s: %w", field, value, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByDateRange(ctx context.Context, start, end time.Time, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE lesson_date >= $1 AND lesson_date <= $2
		ORDER BY lesson_date, start_time
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, start, end, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by date range",
			zap.Error(err),
			zap.Time("start", start),
			zap.Time("end", end),
		)
		return nil, fmt.Errorf("find bookings in range: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE lesson_date >= $1 AND lesson_date <= $2`

	var count int64
	if err := r.db.QueryRow(ctx, query, start, end).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by date range", zap.Error(err))
		return 0, fmt.Errorf("count bookings in range: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error) {
	query := `UPDATE bookings SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(to)),
		)
		return false, fmt.Errorf("update booking %s status to %s: %w", id.String(), string(to), err)
	}

	return result.RowsAffected() == 1, nil
}
