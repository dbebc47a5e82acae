package remove_coupon

import (
	"net/http"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/middleware"
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

// Handle DELETE /api/v1/coupons/pending
// Снятие отсутствующего купона не является ошибкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	if err := h.useCase.Remove(sessionID); err != nil {
		h.logger.Error("DELETE /coupons/pending - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
