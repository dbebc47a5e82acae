package resolve_pricing

import (
	"errors"
	"net/http"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
	pricingService "github.com/gaadimech/GaadiMech-PWA-sub001/internal/service/pricing"
)

const (
	msgParamsRequired = "manufacturer, model and fuelType are required"
	msgNoPricingMatch = "no pricing available for this vehicle"
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

// Handle GET /api/v1/pricing/resolve?manufacturer=&model=&fuelType=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	vehicle := domain.Vehicle{
		Manufacturer: q.Get("manufacturer"),
		Model:        q.Get("model"),
		FuelType:     q.Get("fuelType"),
	}
	if !vehicle.IsComplete() {
		h.logger.Warn("GET /pricing/resolve - incomplete vehicle params")
		handlers.RespondBadRequest(w, msgParamsRequired)
		return
	}

	pricing, err := h.pricing.ResolvePricing(vehicle)
	if err != nil {
		switch {
		case errors.Is(err, pricingService.ErrNoPricingMatch):
			h.logger.Info("GET /pricing/resolve - no match for %s %s (%s)",
				vehicle.Manufacturer, vehicle.Model, vehicle.FuelType)
			handlers.RespondNotFound(w, msgNoPricingMatch)

		default:
			h.logger.Error("GET /pricing/resolve - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /pricing/resolve - resolved %s %s (%s)",
		vehicle.Manufacturer, vehicle.Model, vehicle.FuelType)
	handlers.RespondJSON(w, http.StatusOK, PricingResponse{
		Manufacturer: vehicle.Manufacturer,
		Model:        vehicle.Model,
		FuelType:     vehicle.FuelType,
		Pricing:      *pricing,
		AutoDiscount: pricing.AutoDiscountAmount(),
	})
}
