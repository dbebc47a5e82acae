package get_fuel_types

import (
	"net/http"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers"
)

const msgParamsRequired = "manufacturer and model are required"

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

// Handle GET /api/v1/pricing/fuel-types?manufacturer=&model=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	manufacturer := r.URL.Query().Get("manufacturer")
	model := r.URL.Query().Get("model")
	if manufacturer == "" || model == "" {
		h.logger.Warn("GET /pricing/fuel-types - missing params")
		handlers.RespondBadRequest(w, msgParamsRequired)
		return
	}

	fuelTypes := h.pricing.ListFuelTypes(manufacturer, model)

	h.logger.Info("GET /pricing/fuel-types - %s %s: %d fuel types", manufacturer, model, len(fuelTypes))
	handlers.RespondJSON(w, http.StatusOK, FuelTypesResponse{
		Manufacturer: manufacturer,
		Model:        model,
		FuelTypes:    fuelTypes,
	})
}
