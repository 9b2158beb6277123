package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"surf-booking/internal/cache"
	"surf-booking/internal/data/entity"
	"surf-booking/internal/dto/response"
	"surf-booking/pkg/utils"
)

type AvailabilityService interface {
	// GetSlots serves cached availability, refreshing through the
	// single-flight cache on a miss.
	GetSlots(ctx context.Context, beach, date string) (*response.AvailabilityResponse, error)

	Invalidate(beach, date string)
	Sweep() int
	Stats() response.CacheStatsResponse
}

type availabilityService struct {
	cache    *cache.AvailabilityCache
	provider cache.SlotProvider
	ttl      time.Duration
	log      *zap.Logger
}

func NewAvailabilityService(c *cache.AvailabilityCache, provider cache.SlotProvider, ttl time.Duration, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		cache:    c,
		provider: provider,
		ttl:      ttl,
		log:      log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) GetSlots(ctx context.Context, beach, date string) (*response.AvailabilityResponse, error) {
	if beach == "" {
		return nil, utils.NewValidationError("beach", "This field is required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, utils.NewValidationError("date", "Invalid date format")
	}

	key := cache.Key(beach, date)
	slots, err := s.cache.GetOrRefresh(ctx, key, s.ttl, func(ctx context.Context) ([]entity.Slot, error) {
		return s.provider.FetchSlots(ctx, beach, date)
	})
	if err != nil {
		return nil, err
	}

	return &response.AvailabilityResponse{
		Beach: beach,
		Date:  date,
		Slots: slots,
	}, nil
}

func (s *availabilityService) Invalidate(beach, date string) {
	s.cache.Invalidate(cache.Key(beach, date))
	s.log.Info("Availability cache invalidated",
		zap.String("beach", beach),
		zap.String("date", date),
	)
}

func (s *availabilityService) Sweep() int {
	return s.cache.Sweep()
}

func (s *availabilityService) Stats() response.CacheStatsResponse {
	total, valid := s.cache.Stats()
	return response.CacheStatsResponse{
		Entries:      total,
		ValidEntries: valid,
	}
}
