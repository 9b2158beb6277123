package repository

import (
	"errors"

	"surf-booking/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	Discount DiscountRepository
	Booking  BookingRepository
	Waiver   WaiverRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Discount: NewDiscountRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Waiver:   NewWaiverRepository(db, log),
	}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
