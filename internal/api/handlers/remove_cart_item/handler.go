package remove_cart_item

import (
	"net/http"

	"github.com/gorilla/mux"

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

// Handle DELETE /api/v1/cart/items/{serviceId}
// Удаление отсутствующей позиции не является ошибкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	serviceID := mux.Vars(r)["serviceId"]

	if err := h.cart.RemoveItem(r.Context(), sessionID, serviceID); err != nil {
		h.logger.Error("DELETE /cart/items/%s - failed: %v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /cart/items/%s - session=%s", serviceID, sessionID)
	w.WriteHeader(http.StatusNoContent)
}
