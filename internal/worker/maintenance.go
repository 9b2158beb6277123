package worker

import (
	"context"
	"time"

	"surf-booking/internal/usecase"
	"surf-booking/pkg/utils"

	"go.uber.org/zap"
)

// Maintenance runs the periodic housekeeping: expired cache entries are
// swept and orphaned waiver signatures are deleted. Both loops stop when
// the context is cancelled.
type Maintenance struct {
	availability usecase.AvailabilityService
	waivers      usecase.WaiverService
	config       *utils.Config
	log          *zap.Logger
}

func NewMaintenance(service *usecase.Service, config *utils.Config, log *zap.Logger) *Maintenance {
	return &Maintenance{
		availability: service.Availability,
		waivers:      service.Waiver,
		config:       config,
		log:          log.With(zap.String("component", "maintenance")),
	}
}

// Start launches the background loops. It returns immediately.
func (m *Maintenance) Start(ctx context.Context) {
	go m.sweepLoop(ctx)
	go m.waiverLoop(ctx)

	m.log.Info("Maintenance worker started",
		zap.Duration("cache_sweep_interval", m.config.Cache.SweepInterval),
		zap.Duration("waiver_cleanup_interval", m.config.Waiver.CleanupInterval))
}

func (m *Maintenance) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(m.config.Cache.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Info("Cache sweep loop stopped")
			return
		case <-ticker.C:
			if removed := m.availability.Sweep(); removed > 0 {
				m.log.Info("Swept expired cache entries", zap.Int("removed", removed))
			}
		}
	}
}

func (m *Maintenance) waiverLoop(ctx context.Context) {
	ticker := time.NewTicker(m.config.Waiver.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Info("Waiver cleanup loop stopped")
			return
		case <-ticker.C:
			deleted, err := m.waivers.CleanupOrphaned(ctx, m.config.Waiver.Retention)
			if err != nil {
				m.log.Error("Waiver cleanup failed", zap.Error(err))
				continue
			}
			if deleted > 0 {
				m.log.Info("Removed orphaned waiver signatures", zap.Int64("deleted", deleted))
			}
		}
	}
}
