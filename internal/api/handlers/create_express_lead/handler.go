package create_express_lead

import (
	"errors"
	"net/http"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/middleware"
	createLead "github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/create_express_lead"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidMobile      = "please enter a valid 10-digit mobile number"
	msgNoVehicle          = "please select your car first"
	msgPricingUnavailable = "pricing is not available for this vehicle"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	useCase CreateLeadUseCase
	logger  Logger
}

func NewHandler(useCase CreateLeadUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/express/leads
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var req CreateLeadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /express/leads - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, createLead.ErrInvalidMobile):
			h.logger.Warn("POST /express/leads - invalid mobile for session=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidMobile)

		case errors.Is(err, createLead.ErrNoVehicle):
			h.logger.Warn("POST /express/leads - no vehicle for session=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoVehicle)

		case errors.Is(err, createLead.ErrPricingUnavailable):
			h.logger.Warn("POST /express/leads - pricing unavailable for session=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPricingUnavailable)

		case errors.Is(err, createLead.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /express/leads - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /express/leads - lead id=%d created for session=%s", result.LeadID, sessionID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
