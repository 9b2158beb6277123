package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"surf-booking/internal/data/entity"
	"surf-booking/internal/data/repository"
	"surf-booking/internal/dto/request"
	"surf-booking/internal/dto/response"
	"surf-booking/pkg/utils"
)

type WaiverService interface {
	Store(ctx context.Context, req *request.CreateWaiverRequest, ipAddress, userAgent string) (*response.WaiverResponse, error)
	GetByPaymentRef(ctx context.Context, paymentRef string) ([]response.WaiverResponse, error)

	// CleanupOrphaned deletes signatures older than the retention window
	// whose payment never produced a booking.
	CleanupOrphaned(ctx context.Context, retention time.Duration) (int64, error)
}

type waiverService struct {
	repo repository.WaiverRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewWaiverService(repo repository.WaiverRepository, log *zap.Logger) WaiverService {
	return &waiverService{
		repo: repo,
		log:  log.With(zap.String("service", "waiver")),
		now:  time.Now,
	}
}

func (s *waiverService) Store(ctx context.Context, req *request.CreateWaiverRequest, ipAddress, userAgent string) (*response.WaiverResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Waiver validation failed", zap.Any("errors", errs))
		return nil, &utils.ValidationError{Fields: errs}
	}

	if req.IsMinor && req.GuardianName == "" {
		return nil, utils.NewValidationError("guardian_name", "Required for minor participants")
	}

	waiver := &entity.WaiverSignature{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		SlotID:          req.SlotID,
		PaymentRef:      req.PaymentRef,
		SignerName:      req.SignerName,
		ParticipantName: req.ParticipantName,
		IsMinor:         req.IsMinor,
		GuardianName:    req.GuardianName,
		Email:           req.Email,
		Phone:           req.Phone,
		EmergencyName:   req.EmergencyName,
		EmergencyPhone:  req.EmergencyPhone,
		MedicalNotes:    req.MedicalNotes,
		IPAddress:       ipAddress,
		UserAgent:       userAgent,
	}

	if err := s.repo.Create(ctx, waiver); err != nil {
		return nil, err
	}

	s.log.Info("Waiver signature stored",
		zap.String("waiver_id", waiver.ID.String()),
		zap.String("payment_ref", waiver.PaymentRef),
		zap.String("slot_id", waiver.SlotID),
	)

	resp := response.WaiverToResponse(waiver)
	return &resp, nil
}

func (s *waiverService) GetByPaymentRef(ctx context.Context, paymentRef string) ([]response.WaiverResponse, error) {
	if paymentRef == "" {
		return nil, utils.NewValidationError("payment_ref", "This field is required")
	}

	waivers, err := s.repo.FindByPaymentRef(ctx, paymentRef)
	if err != nil {
		return nil, err
	}

	out := make([]response.WaiverResponse, len(waivers))
	for i, w := range waivers {
		out[i] = response.WaiverToResponse(w)
	}
	return out, nil
}

func (s *waiverService) CleanupOrphaned(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention)

	deleted, err := s.repo.DeleteOrphanedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		s.log.Info("Orphaned waivers removed",
			zap.Int64("deleted", deleted),
			zap.Time("cutoff", cutoff),
		)
	}

	return deleted, nil
}
