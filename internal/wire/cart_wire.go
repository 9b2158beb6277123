package wire

import (
	"surf-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCart(r chi.Router, cartHandler *adaptor.CartHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/cart/quote", cartHandler.QuoteCart)
	r.Post("/api/checkout", cartHandler.Checkout)
}
