package wire

import (
	"surf-booking/internal/adaptor"
	"surf-booking/pkg/middleware"
	"surf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAvailability(
	r chi.Router,
	availabilityHandler *adaptor.AvailabilityHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/availability", availabilityHandler.GetAvailability)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/cache", func(r chi.Router) {
		r.Use(middleware.APIKey(config.Admin.APIKeyHash, log))

		r.Get("/stats", availabilityHandler.GetCacheStats)
		r.Post("/invalidate", availabilityHandler.InvalidateCache)
	})
}
