package schedule_express_lead

import (
	"errors"
	"net/http"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/middleware"
	scheduleLead "github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/schedule_express_lead"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateFormat  = "invalid service date or time slot, expected YYYY-MM-DD and HH:MM"
	msgInvalidDate        = "invalid service date"
	msgInvalidSlot        = "invalid time slot"
	msgNoMobile           = "please enter your mobile number first"
	msgNoVehicle          = "please select your car first"
	msgLeadNotFound       = "booking not found, please try again"
)

type Handler struct {
	useCase ScheduleLeadUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleLeadUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/express/leads/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var req ScheduleLeadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /express/leads/schedule - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("PATCH /express/leads/schedule - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleLead.ErrInvalidDate):
			h.logger.Warn("PATCH /express/leads/schedule - invalid date for session=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, scheduleLead.ErrInvalidSlot):
			h.logger.Warn("PATCH /express/leads/schedule - invalid slot for session=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, scheduleLead.ErrNoMobile):
			h.logger.Warn("PATCH /express/leads/schedule - no mobile for session=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoMobile)

		case errors.Is(err, scheduleLead.ErrNoVehicle):
			h.logger.Warn("PATCH /express/leads/schedule - no vehicle for session=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoVehicle)

		case errors.Is(err, scheduleLead.ErrLeadNotFound):
			h.logger.Warn("PATCH /express/leads/schedule - lead not found for session=%s", sessionID)
			handlers.RespondNotFound(w, msgLeadNotFound)

		case errors.Is(err, scheduleLead.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /express/leads/schedule - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /express/leads/schedule - lead id=%d scheduled for session=%s", result.LeadID, sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
