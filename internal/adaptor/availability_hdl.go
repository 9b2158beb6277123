package adaptor

import (
	"net/http"

	"surf-booking/internal/usecase"
	"surf-booking/pkg/utils"

	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// GetAvailability handles GET /api/availability?beach=&date=
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	beach := query.Get("beach")
	date := query.Get("date")

	slots, err := h.service.GetSlots(r.Context(), beach, date)
	if err != nil {
		handleServiceError(w, h.log, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// GetCacheStats handles GET /api/admin/cache/stats
func (h *AvailabilityHandler) GetCacheStats(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Stats())
}

// InvalidateCache handles POST /api/admin/cache/invalidate?beach=&date=
func (h *AvailabilityHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	beach := query.Get("beach")
	date := query.Get("date")
	if beach == "" || date == "" {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{
			"beach": "beach and date query parameters are required",
		})
		return
	}

	h.service.Invalidate(beach, date)
	h.log.Info("Cache entry invalidated",
		zap.String("beach", beach),
		zap.String("date", date))

	utils.ResponseSuccess(w, "Cache entry invalidated", nil)
}
