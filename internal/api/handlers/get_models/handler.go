package get_models

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers"
)

const msgManufacturerRequired = "manufacturer is required"

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

// Handle GET /api/v1/pricing/manufacturers/{manufacturer}/models
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	manufacturer := mux.Vars(r)["manufacturer"]
	if manufacturer == "" {
		handlers.RespondBadRequest(w, msgManufacturerRequired)
		return
	}

	models := h.pricing.ListModels(manufacturer)

	h.logger.Info("GET /pricing/manufacturers/%s/models - %d models", manufacturer, len(models))
	handlers.RespondJSON(w, http.StatusOK, ModelsResponse{
		Manufacturer: manufacturer,
		Models:       models,
	})
}
