package apply_coupon

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/middleware"
	applyCoupon "github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/apply_coupon"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "coupon code and positive amount are required"
)

type Handler struct {
	useCase ApplyCouponUseCase
	logger  Logger
}

func NewHandler(useCase ApplyCouponUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/coupons/apply
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var req ApplyCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coupons/apply - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &applyCoupon.Request{
		SessionID: sessionID,
		Code:      req.Code,
		Amount:    req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, applyCoupon.ErrCouponRejected):
			// Причина отказа из CMS отдается пользователю как есть
			h.logger.Info("POST /coupons/apply - rejected: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, rejectionMessage(err))

		case errors.Is(err, applyCoupon.ErrInvalidInput):
			h.logger.Warn("POST /coupons/apply - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /coupons/apply - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coupons/apply - code=%s applied for session=%s", result.Code, sessionID)
	handlers.RespondJSON(w, http.StatusOK, ApplyCouponResponse{
		Code:           result.Code,
		DiscountType:   result.DiscountType,
		DiscountAmount: result.DiscountAmount,
		FinalPrice:     result.FinalPrice,
	})
}

// rejectionMessage извлекает причину отказа из цепочки ошибок
func rejectionMessage(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return "coupon rejected"
}
