package usecase

import (
	"surf-booking/internal/cache"
	"surf-booking/internal/data/repository"
	"surf-booking/internal/payments"
	"surf-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Discount     DiscountService
	Cart         CartService
	Booking      BookingService
	Availability AvailabilityService
	Waiver       WaiverService
}

func NewService(
	repo *repository.Repository,
	availabilityCache *cache.AvailabilityCache,
	slotProvider cache.SlotProvider,
	paymentProvider payments.Provider,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	discount := NewDiscountService(repo.Discount, log)

	return &Service{
		Discount:     discount,
		Cart:         NewCartService(discount, paymentProvider, log),
		Booking:      NewBookingService(repo.Booking, log),
		Availability: NewAvailabilityService(availabilityCache, slotProvider, config.Cache.TTL, log),
		Waiver:       NewWaiverService(repo.Waiver, log),
	}
}
