package refresh_pricing

import (
	"net/http"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers"
)

type Handler struct {
	pricing PricingService
	logger  Logger
}

func NewHandler(pricing PricingService, logger Logger) *Handler {
	return &Handler{
		pricing: pricing,
		logger:  logger,
	}
}

// Handle POST /api/v1/pricing/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rows := h.pricing.Refresh(r.Context())

	h.logger.Info("POST /pricing/refresh - %d rows loaded", rows)
	handlers.RespondJSON(w, http.StatusOK, RefreshResponse{Rows: rows})
}
