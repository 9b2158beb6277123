package wire

import (
	"surf-booking/internal/adaptor"
	"surf-booking/pkg/middleware"
	"surf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Completion notifications from the payment collaborator. Safe to
	// retry; duplicates return the original records.
	r.Post("/api/payments/notify", bookingHandler.PaymentNotification)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.APIKey(config.Admin.APIKeyHash, log))

		r.Get("/", bookingHandler.ListBookings)
		r.Get("/{id}", bookingHandler.GetBooking)
		r.Get("/payment/{ref}", bookingHandler.GetBookingsByPaymentRef)
		r.Get("/confirmation/{number}", bookingHandler.GetBookingsByConfirmation)
		r.Patch("/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
