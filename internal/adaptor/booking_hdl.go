package adaptor

import (
	"encoding/json"
	"net/http"

	"surf-booking/internal/dto/request"
	"surf-booking/internal/usecase"
	"surf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// PaymentNotification handles POST /api/payments/notify. The payment
// collaborator may deliver the same notification more than once; retries
// get the original records back.
func (h *BookingHandler) PaymentNotification(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid payment notification body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	bookings, err := h.service.UpsertByPaymentReference(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "record payment notification")
		return
	}

	h.log.Info("Payment notification processed",
		zap.String("payment_ref", req.PaymentRef),
		zap.Int("bookings", len(bookings)))

	utils.ResponseSuccess(w, "Booking recorded", bookings)
}

// GetBooking handles GET /api/admin/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetBookingsByPaymentRef handles GET /api/admin/bookings/payment/{ref}
func (h *BookingHandler) GetBookingsByPaymentRef(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	bookings, err := h.service.GetByPaymentRef(r.Context(), ref)
	if err != nil {
		handleServiceError(w, h.log, err, "get bookings by payment ref")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingsByConfirmation handles GET /api/admin/bookings/confirmation/{number}
func (h *BookingHandler) GetBookingsByConfirmation(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	bookings, err := h.service.GetByConfirmationNumber(r.Context(), number)
	if err != nil {
		handleServiceError(w, h.log, err, "get bookings by confirmation")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ListBookings handles GET /api/admin/bookings?start=&end=&page=&per_page=
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 20)

	bookings, err := h.service.ListForDateRange(r.Context(),
		query.Get("start"), query.Get("end"), page, perPage)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateBookingStatus handles PATCH /api/admin/bookings/{id}/status
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid status update body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if fields := utils.ValidateStruct(req); fields != nil {
		utils.ResponseBadRequest(w, "Validation failed", fields)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	h.log.Info("Booking status updated",
		zap.String("booking_id", id),
		zap.String("status", req.Status))

	utils.ResponseSuccess(w, "Booking status updated", booking)
}
