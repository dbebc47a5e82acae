package clear_vehicle

import (
	"net/http"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/middleware"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/infra/sessionstore"
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

// Handle DELETE /api/v1/session/vehicle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	h.sessions.Delete(sessionID, sessionstore.KeySelectedVehicle)

	h.logger.Info("DELETE /session/vehicle - cleared for session=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
