package wire

import (
	"surf-booking/internal/adaptor"
	"surf-booking/pkg/middleware"
	"surf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDiscount(
	r chi.Router,
	discountHandler *adaptor.DiscountHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Read-only validation for the storefront; never consumes a use.
	r.Post("/api/discounts/validate", discountHandler.ValidateDiscount)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/discounts", func(r chi.Router) {
		r.Use(middleware.APIKey(config.Admin.APIKeyHash, log))

		r.Post("/", discountHandler.CreateDiscount)
		r.Get("/", discountHandler.ListDiscounts)
		r.Get("/{id}", discountHandler.GetDiscount)
		r.Put("/{id}", discountHandler.UpdateDiscount)
		r.Delete("/{id}", discountHandler.DeleteDiscount)
	})
}
