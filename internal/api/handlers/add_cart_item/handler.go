package add_cart_item

import (
	"errors"
	"net/http"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/middleware"
	cartService "github.com/gaadimech/GaadiMech-PWA-sub001/internal/service/cart"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownService     = "unknown service"
	msgInvalidQuantity    = "quantity must be positive"
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

// Handle POST /api/v1/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var req AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/items - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	line, err := h.cart.AddItem(r.Context(), sessionID, req.ServiceID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrUnknownService):
			h.logger.Warn("POST /cart/items - unknown service id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgUnknownService)

		case errors.Is(err, cartService.ErrInvalidQuantity):
			h.logger.Warn("POST /cart/items - invalid quantity=%d", req.Quantity)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		default:
			h.logger.Error("POST /cart/items - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/items - service=%s qty=%d added for session=%s", req.ServiceID, req.Quantity, sessionID)
	handlers.RespondJSON(w, http.StatusCreated, AddItemResponse{
		Line:    *line,
		Summary: h.cart.GetCartSummary(sessionID),
	})
}
