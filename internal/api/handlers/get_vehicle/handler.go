package get_vehicle

import (
	"net/http"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/middleware"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/infra/sessionstore"
)

const msgNoVehicle = "no vehicle selected"

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

// Handle GET /api/v1/session/vehicle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var vehicle domain.Vehicle
	if !h.sessions.Get(sessionID, sessionstore.KeySelectedVehicle, &vehicle) || !vehicle.IsComplete() {
		handlers.RespondNotFound(w, msgNoVehicle)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, vehicle)
}
