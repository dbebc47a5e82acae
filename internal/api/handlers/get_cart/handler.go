package get_cart

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

// Handle GET /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	handlers.RespondJSON(w, http.StatusOK, h.cart.GetCartSummary(sessionID))
}
