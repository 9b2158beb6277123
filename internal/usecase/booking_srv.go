package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"surf-booking/internal/data/entity"
	"surf-booking/internal/data/repository"
	"surf-booking/internal/dto/request"
	"surf-booking/internal/dto/response"
	"surf-booking/pkg/utils"
)

type BookingService interface {
	// UpsertByPaymentReference records the bookings for a completed
	// payment. Retried notifications for the same payment reference
	// return the original records with the original confirmation number.
	UpsertByPaymentReference(ctx context.Context, req *request.PaymentNotificationRequest) ([]response.BookingResponse, error)

	GetByID(ctx context.Context, id string) (*response.BookingResponse, error)
	GetByPaymentRef(ctx context.Context, paymentRef string) ([]response.BookingResponse, error)
	GetByConfirmationNumber(ctx context.Context, confirmation string) ([]response.BookingResponse, error)
	ListForDateRange(ctx context.Context, start, end string, page, perPage int) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateStatus(ctx context.Context, id string, status string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo repository.BookingRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

func (s *bookingService) UpsertByPaymentReference(ctx context.Context, req *request.PaymentNotificationRequest) ([]response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Payment notification validation failed", zap.Any("errors", errs))
		return nil, &utils.ValidationError{Fields: errs}
	}

	existing, err := s.repo.FindByPaymentRef(ctx, req.PaymentRef)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		s.log.Info("Duplicate payment notification, returning existing bookings",
			zap.String("payment_ref", req.PaymentRef),
			zap.String("confirmation", existing[0].ConfirmationNumber),
		)
		return response.BookingsToResponse(existing), nil
	}

	bookings, err := s.buildBookings(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateAll(ctx, bookings); err != nil {
		if errors.Is(err, utils.ErrConflict) {
			// A concurrent notification inserted first; its records win
			// so both callers see one confirmation number.
			existing, readErr := s.repo.FindByPaymentRef(ctx, req.PaymentRef)
			if readErr != nil {
				return nil, readErr
			}
			s.log.Info("Lost booking insert race, returning winner's records",
				zap.String("payment_ref", req.PaymentRef),
			)
			return response.BookingsToResponse(existing), nil
		}
		return nil, err
	}

	s.log.Info("Bookings created",
		zap.String("payment_ref", req.PaymentRef),
		zap.String("confirmation", bookings[0].ConfirmationNumber),
		zap.Int("count", len(bookings)),
	)

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) buildBookings(req *request.PaymentNotificationRequest) ([]*entity.Booking, error) {
	confirmation := utils.GenerateConfirmationNumber()
	now := s.now()

	bookings := make([]*entity.Booking, len(req.Items))
	for i, item := range req.Items {
		lessonDate, err := time.Parse("2006-01-02", item.LessonDate)
		if err != nil {
			return nil, utils.NewValidationError("lesson_date", "Invalid date format")
		}

		lessons := item.LessonsBooked
		if lessons < 1 {
			lessons = 1
		}

		bookings[i] = &entity.Booking{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			ConfirmationNumber: confirmation,
			PaymentRef:         req.PaymentRef,
			ItemIndex:          i,
			CustomerName:       req.Customer.Name,
			CustomerEmail:      req.Customer.Email,
			CustomerPhone:      req.Customer.Phone,
			Beach:              item.Beach,
			LessonDate:         lessonDate,
			StartTime:          item.StartTime,
			EndTime:            item.EndTime,
			Price:              item.Price,
			LessonsBooked:      lessons,
			IsPrivate:          item.IsPrivate,
			Status:             entity.BookingStatusConfirmed,
		}
	}

	return bookings, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*response.BookingResponse, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.NewValidationError("id", "Must be a valid UUID")
	}

	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", id, utils.ErrNotFound)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetByPaymentRef(ctx context.Context, paymentRef string) ([]response.BookingResponse, error) {
	if paymentRef == "" {
		return nil, utils.NewValidationError("payment_ref", "This field is required")
	}

	bookings, err := s.repo.FindByPaymentRef(ctx, paymentRef)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("bookings for payment %s: %w", paymentRef, utils.ErrNotFound)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetByConfirmationNumber(ctx context.Context, confirmation string) ([]response.BookingResponse, error) {
	if confirmation == "" {
		return nil, utils.NewValidationError("confirmation_number", "This field is required")
	}

	bookings, err := s.repo.FindByConfirmationNumber(ctx, confirmation)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("bookings for confirmation %s: %w", confirmation, utils.ErrNotFound)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) ListForDateRange(ctx context.Context, start, end string, page, perPage int) (*response.PaginatedResponse[response.BookingResponse], error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, utils.NewValidationError("start", "Invalid date format")
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, utils.NewValidationError("end", "Invalid date format")
	}
	if endDate.Before(startDate) {
		return nil, utils.NewValidationError("end", "Must not be before start")
	}

	limit := perPage
	offset := (page - 1) * perPage

	bookings, err := s.repo.FindByDateRange(ctx, startDate, endDate, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(response.BookingsToResponse(bookings), page, perPage, total), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, status string) (*response.BookingResponse, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.NewValidationError("id", "Must be a valid UUID")
	}

	target := entity.BookingStatus(status)
	switch target {
	case entity.BookingStatusCompleted, entity.BookingStatusCancelled:
	default:
		return nil, utils.NewValidationError("status", "Must be one of: completed, cancelled")
	}

	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", id, utils.ErrNotFound)
	}

	if !booking.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("booking %s: %s to %s: %w",
			id, booking.Status, target, utils.ErrInvalidTransition)
	}

	// Status-guarded update; a concurrent transition makes this a no-op.
	updated, err := s.repo.UpdateStatusIf(ctx, bookingID, booking.Status, target)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("booking %s: status changed concurrently: %w", id, utils.ErrInvalidTransition)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", id),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(target)),
	)

	booking.Status = target
	booking.UpdatedAt = s.now()
	resp := response.BookingToResponse(booking)
	return &resp, nil
}
