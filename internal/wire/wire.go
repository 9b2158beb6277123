// internal/wire/wire.go
package wire

import (
	"net/http"

	"surf-booking/internal/adaptor"
	"surf-booking/internal/cache"
	"surf-booking/internal/data/repository"
	"surf-booking/internal/payments"
	"surf-booking/internal/usecase"
	"surf-booking/pkg/middleware"
	"surf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes services, handlers and routes.
func Wiring(
	repo *repository.Repository,
	availabilityCache *cache.AvailabilityCache,
	slotProvider cache.SlotProvider,
	paymentProvider payments.Provider,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, availabilityCache, slotProvider, paymentProvider, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAvailability(r, handler.Availability, config, logger)
	wireCart(r, handler.Cart)
	wireDiscount(r, handler.Discount, config, logger)
	wireBooking(r, handler.Booking, config, logger)
	wireWaiver(r, handler.Waiver, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
