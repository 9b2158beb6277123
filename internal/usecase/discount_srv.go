package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"surf-booking/internal/data/entity"
	"surf-booking/internal/data/repository"
	"surf-booking/internal/dto/request"
	"surf-booking/internal/dto/response"
	"surf-booking/pkg/utils"
)

type DiscountService interface {
	Create(ctx context.Context, req *request.CreateDiscountRequest) (*response.DiscountResponse, error)

	// Validate is read-only: it never touches the usage counter.
	Validate(ctx context.Context, code string, orderAmount decimal.Decimal) (*response.ValidateDiscountResponse, error)

	// Redeem consumes one use. The reason is set when ok is false.
	Redeem(ctx context.Context, code string) (ok bool, reason entity.DiscountInvalidReason, err error)

	GetByID(ctx context.Context, id string) (*response.DiscountResponse, error)
	List(ctx context.Context) ([]response.DiscountResponse, error)
	Update(ctx context.Context, id string, req *request.UpdateDiscountRequest) (*response.DiscountResponse, error)
	Delete(ctx context.Context, id string) error
}

type discountService struct {
	repo repository.DiscountRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewDiscountService(repo repository.DiscountRepository, log *zap.Logger) DiscountService {
	return &discountService{
		repo: repo,
		log:  log.With(zap.String("service", "discount")),
		now:  time.Now,
	}
}

// NormalizeCode strips whitespace and upper-cases; codes are stored and
// matched case-insensitively.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

var oneHundred = decimal.NewFromInt(100)

func (s *discountService) Create(ctx context.Context, req *request.CreateDiscountRequest) (*response.DiscountResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create discount validation failed", zap.Any("errors", errs))
		return nil, &utils.ValidationError{Fields: errs}
	}

	code := NormalizeCode(req.Code)
	if code == "" {
		return nil, utils.NewValidationError("code", "This field is required")
	}

	if !req.Amount.IsPositive() {
		return nil, utils.NewValidationError("amount", "Must be positive")
	}

	discountType := entity.DiscountType(req.Type)
	if discountType == entity.DiscountTypePercentage && req.Amount.GreaterThan(oneHundred) {
		return nil, utils.NewValidationError("amount", "Percentage must not exceed 100")
	}

	if req.MinOrder.IsNegative() {
		return nil, utils.NewValidationError("min_order", "Must not be negative")
	}

	now := s.now()
	discount := &entity.DiscountCode{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:        code,
		Type:        discountType,
		Amount:      req.Amount,
		Description: req.Description,
		MinOrder:    req.MinOrder,
		MaxUses:     req.MaxUses,
		CurrentUses: 0,
		ExpiresAt:   req.ExpiresAt,
		Active:      true,
	}

	if err := s.repo.Create(ctx, discount); err != nil {
		return nil, err
	}

	s.log.Info("Discount code created",
		zap.String("code", code),
		zap.String("type", req.Type),
		zap.String("amount", req.Amount.String()),
	)

	resp := response.DiscountToResponse(discount)
	return &resp, nil
}

func (s *discountService) Validate(ctx context.Context, code string, orderAmount decimal.Decimal) (*response.ValidateDiscountResponse, error) {
	discount, err := s.repo.FindByCode(ctx, NormalizeCode(code))
	if err != nil {
		return nil, fmt.Errorf("validate discount code: %w", err)
	}

	if reason, ok := s.evaluate(discount, orderAmount); !ok {
		return &response.ValidateDiscountResponse{Valid: false, Reason: reason}, nil
	}

	amount := discount.DiscountFor(orderAmount)
	resp := response.DiscountToResponse(discount)
	return &response.ValidateDiscountResponse{
		Valid:          true,
		Discount:       &resp,
		DiscountAmount: &amount,
	}, nil
}

// evaluate applies the validity rules in a fixed order so callers always
// see the same reason for the same state.
func (s *discountService) evaluate(d *entity.DiscountCode, orderAmount decimal.Decimal) (entity.DiscountInvalidReason, bool) {
	if d == nil {
		return entity.DiscountNotFound, false
	}
	if !d.Active {
		return entity.DiscountInactive, false
	}
	if d.ExpiresAt != nil && !s.now().Before(*d.ExpiresAt) {
		return entity.DiscountExpired, false
	}
	if orderAmount.LessThan(d.MinOrder) {
		return entity.DiscountBelowMinimum, false
	}
	if d.MaxUses != nil && d.CurrentUses >= *d.MaxUses {
		return entity.DiscountUsesExhausted, false
	}
	return "", true
}

func (s *discountService) Redeem(ctx context.Context, code string) (bool, entity.DiscountInvalidReason, error) {
	normalized := NormalizeCode(code)

	ok, err := s.repo.Redeem(ctx, normalized)
	if err != nil {
		return false, "", fmt.Errorf("redeem discount code: %w", err)
	}
	if ok {
		s.log.Info("Discount code redeemed", zap.String("code", normalized))
		return true, "", nil
	}

	// The guarded update rejected the increment; re-read to tell the
	// caller why.
	discount, err := s.repo.FindByCode(ctx, normalized)
	if err != nil {
		return false, "", fmt.Errorf("redeem discount code: %w", err)
	}

	reason, _ := s.evaluate(discount, decimal.Zero)
	if reason == "" {
		// Raced with a state change between the update and the read.
		reason = entity.DiscountUsesExhausted
	}

	s.log.Warn("Discount redemption rejected",
		zap.String("code", normalized),
		zap.String("reason", string(reason)),
	)
	return false, reason, nil
}

func (s *discountService) GetByID(ctx context.Context, id string) (*response.DiscountResponse, error) {
	discountID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.NewValidationError("id", "Must be a valid UUID")
	}

	discount, err := s.repo.FindByID(ctx, discountID)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, fmt.Errorf("discount code %s: %w", id, utils.ErrNotFound)
	}

	resp := response.DiscountToResponse(discount)
	return &resp, nil
}

func (s *discountService) List(ctx context.Context) ([]response.DiscountResponse, error) {
	discounts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.DiscountResponse, len(discounts))
	for i, d := range discounts {
		out[i] = response.DiscountToResponse(d)
	}
	return out, nil
}

func (s *discountService) Update(ctx context.Context, id string, req *request.UpdateDiscountRequest) (*response.DiscountResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &utils.ValidationError{Fields: errs}
	}

	discountID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.NewValidationError("id", "Must be a valid UUID")
	}

	discount, err := s.repo.FindByID(ctx, discountID)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, fmt.Errorf("discount code %s: %w", id, utils.ErrNotFound)
	}

	// Only supplied fields change.
	if req.Type != nil {
		discount.Type = entity.DiscountType(*req.Type)
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, utils.NewValidationError("amount", "Must be positive")
		}
		discount.Amount = *req.Amount
	}
	if discount.Type == entity.DiscountTypePercentage && discount.Amount.GreaterThan(oneHundred) {
		return nil, utils.NewValidationError("amount", "Percentage must not exceed 100")
	}
	if req.Description != nil {
		discount.Description = *req.Description
	}
	if req.MinOrder != nil {
		discount.MinOrder = *req.MinOrder
	}
	if req.MaxUses != nil {
		discount.MaxUses = req.MaxUses
	}
	if req.ExpiresAt != nil {
		discount.ExpiresAt = req.ExpiresAt
	}
	if req.Active != nil {
		discount.Active = *req.Active
	}
	discount.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, discount); err != nil {
		return nil, err
	}

	s.log.Info("Discount code updated", zap.String("code", discount.Code))

	resp := response.DiscountToResponse(discount)
	return &resp, nil
}

func (s *discountService) Delete(ctx context.Context, id string) error {
	discountID, err := uuid.Parse(id)
	if err != nil {
		return utils.NewValidationError("id", "Must be a valid UUID")
	}

	return s.repo.Delete(ctx, discountID)
}
