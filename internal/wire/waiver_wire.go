package wire

import (
	"surf-booking/internal/adaptor"
	"surf-booking/pkg/middleware"
	"surf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWaiver(
	r chi.Router,
	waiverHandler *adaptor.WaiverHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/waivers", waiverHandler.CreateWaiver)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/waivers", func(r chi.Router) {
		r.Use(middleware.APIKey(config.Admin.APIKeyHash, log))

		r.Get("/payment/{ref}", waiverHandler.GetWaiversByPaymentRef)
		r.Post("/cleanup", waiverHandler.CleanupWaivers)
	})
}
