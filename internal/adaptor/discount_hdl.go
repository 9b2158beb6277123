package adaptor

import (
	"encoding/json"
	"net/http"

	"surf-booking/internal/dto/request"
	"surf-booking/internal/usecase"
	"surf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DiscountHandler struct {
	service usecase.DiscountService
	log     *zap.Logger
}

func NewDiscountHandler(service usecase.DiscountService, log *zap.Logger) *DiscountHandler {
	return &DiscountHandler{
		service: service,
		log:     log.With(zap.String("handler", "discount")),
	}
}

// ValidateDiscount handles POST /api/discounts/validate. Validation is
// read-only; the usage counter only moves at checkout.
func (h *DiscountHandler) ValidateDiscount(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid validate request body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if fields := utils.ValidateStruct(req); fields != nil {
		utils.ResponseBadRequest(w, "Validation failed", fields)
		return
	}

	result, err := h.service.Validate(r.Context(), req.Code, req.OrderAmount)
	if err != nil {
		handleServiceError(w, h.log, err, "validate discount")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// CreateDiscount handles POST /api/admin/discounts
func (h *DiscountHandler) CreateDiscount(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid create request body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	discount, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create discount")
		return
	}

	h.log.Info("Discount code created", zap.String("code", discount.Code))
	utils.ResponseCreated(w, "Discount code created", discount)
}

// GetDiscount handles GET /api/admin/discounts/{id}
func (h *DiscountHandler) GetDiscount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	discount, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get discount")
		return
	}

	utils.ResponseSuccess(w, "success", discount)
}

// ListDiscounts handles GET /api/admin/discounts
func (h *DiscountHandler) ListDiscounts(w http.ResponseWriter, r *http.Request) {
	discounts, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list discounts")
		return
	}

	utils.ResponseSuccess(w, "success", discounts)
}

// UpdateDiscount handles PUT /api/admin/discounts/{id}
func (h *DiscountHandler) UpdateDiscount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid update request body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	discount, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update discount")
		return
	}

	utils.ResponseSuccess(w, "Discount code updated", discount)
}

// DeleteDiscount handles DELETE /api/admin/discounts/{id}
func (h *DiscountHandler) DeleteDiscount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete discount")
		return
	}

	utils.ResponseSuccess(w, "Discount code deleted", nil)
}
