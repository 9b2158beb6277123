package adaptor

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"surf-booking/internal/dto/request"
	"surf-booking/internal/dto/response"
	"surf-booking/internal/usecase"
	"surf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WaiverHandler struct {
	service   usecase.WaiverService
	retention time.Duration
	log       *zap.Logger
}

func NewWaiverHandler(service usecase.WaiverService, retention time.Duration, log *zap.Logger) *WaiverHandler {
	return &WaiverHandler{
		service:   service,
		retention: retention,
		log:       log.With(zap.String("handler", "waiver")),
	}
}

// CreateWaiver handles POST /api/waivers
func (h *WaiverHandler) CreateWaiver(w http.ResponseWriter, r *http.Request) {
	var req request.CreateWaiverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid waiver request body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	waiver, err := h.service.Store(r.Context(), &req, clientIP(r), r.UserAgent())
	if err != nil {
		handleServiceError(w, h.log, err, "store waiver")
		return
	}

	h.log.Info("Waiver signature stored",
		zap.String("payment_ref", req.PaymentRef),
		zap.String("participant", req.ParticipantName))

	utils.ResponseCreated(w, "Waiver signature stored", waiver)
}

// GetWaiversByPaymentRef handles GET /api/admin/waivers/payment/{ref}
func (h *WaiverHandler) GetWaiversByPaymentRef(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	waivers, err := h.service.GetByPaymentRef(r.Context(), ref)
	if err != nil {
		handleServiceError(w, h.log, err, "get waivers by payment ref")
		return
	}

	utils.ResponseSuccess(w, "success", waivers)
}

// CleanupWaivers handles POST /api/admin/waivers/cleanup. It runs the
// same sweep the maintenance worker does on its own schedule.
func (h *WaiverHandler) CleanupWaivers(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.CleanupOrphaned(r.Context(), h.retention)
	if err != nil {
		handleServiceError(w, h.log, err, "cleanup waivers")
		return
	}

	utils.ResponseSuccess(w, "Orphaned waivers removed", response.CleanupResponse{Deleted: deleted})
}

// clientIP prefers the first X-Forwarded-For hop when the service sits
// behind a proxy.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
