package get_manufacturers

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

// Handle GET /api/v1/pricing/manufacturers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	manufacturers := h.pricing.ListManufacturers()

	h.logger.Info("GET /pricing/manufacturers - %d manufacturers", len(manufacturers))
	handlers.RespondJSON(w, http.StatusOK, ManufacturersResponse{Manufacturers: manufacturers})
}
