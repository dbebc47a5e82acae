package clear_cart

import (
	"net/http"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/middleware"
)

type Handler struct {
	cart   CartService
	logger Logger
}

func NewHandler(cart CartService, logger Logger) *Handler {
	return &Handler{
		cart:   cart,
		logger: logger,
	}
}

// Handle DELETE /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	if err := h.cart.ClearCart(r.Context(), sessionID); err != nil {
		h.logger.Error("DELETE /cart - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /cart - cleared for session=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
