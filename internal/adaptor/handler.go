package adaptor

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"surf-booking/internal/usecase"
	"surf-booking/pkg/utils"
)

type Handler struct {
	Availability *AvailabilityHandler
	Cart         *CartHandler
	Discount     *DiscountHandler
	Booking      *BookingHandler
	Waiver       *WaiverHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Availability: NewAvailabilityHandler(service.Availability, log),
		Cart:         NewCartHandler(service.Cart, log),
		Discount:     NewDiscountHandler(service.Discount, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Waiver:       NewWaiverHandler(service.Waiver, config.Waiver.Retention, log),
	}
}

// handleServiceError maps the error taxonomy onto HTTP responses.
// Validation and transition failures are terminal for the caller; upstream
// and internal failures are retry-safe.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *utils.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, utils.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, utils.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, utils.ErrInvalidTransition):
		log.Warn(operation+" failed - invalid transition", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error())

	case errors.Is(err, utils.ErrUpstreamUnavailable):
		log.Warn(operation+" failed - upstream unavailable", zap.Error(err))
		utils.ResponseBadGateway(w, "Availability provider unavailable, please retry")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
