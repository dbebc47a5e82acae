package save_vehicle

import (
	"net/http"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/middleware"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/infra/sessionstore"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgIncompleteVehicle  = "manufacturer, model and fuelType are required"
)

type Handler struct {
	sessions SessionStore
	logger   Logger
}

func NewHandler(sessions SessionStore, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle PUT /api/v1/session/vehicle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var req SaveVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /session/vehicle - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	vehicle := req.ToVehicle()
	if !vehicle.IsComplete() {
		h.logger.Warn("PUT /session/vehicle - incomplete vehicle for session=%s", sessionID)
		handlers.RespondBadRequest(w, msgIncompleteVehicle)
		return
	}

	if err := h.sessions.Put(sessionID, sessionstore.KeySelectedVehicle, vehicle); err != nil {
		h.logger.Error("PUT /session/vehicle - failed to store vehicle: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /session/vehicle - %s %s (%s) saved for session=%s",
		vehicle.Manufacturer, vehicle.Model, vehicle.FuelType, sessionID)
	handlers.RespondJSON(w, http.StatusOK, vehicle)
}
