package schedule_express_lead

import (
	"time"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
	scheduleLead "github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/schedule_express_lead"
	"github.com/gaadimech/GaadiMech-PWA-sub001/pkg/types"
)

// ScheduleLeadRequest HTTP request model
type ScheduleLeadRequest struct {
	ServiceDate string `json:"serviceDate"` // "2026-09-05"
	TimeSlot    string `json:"timeSlot"`    // "09:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с парсингом даты и времени)
func (r *ScheduleLeadRequest) ToUseCaseRequest(sessionID string) (*scheduleLead.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.ServiceDate)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &scheduleLead.Request{
		SessionID:   sessionID,
		ServiceDate: date,
		TimeSlot:    slot,
	}, nil
}

// ScheduledLeadResponse HTTP response model
type ScheduledLeadResponse struct {
	LeadID               int64   `json:"leadId"`
	ServiceDate          string  `json:"serviceDate"`
	TimeSlot             string  `json:"timeSlot"`
	SlotLabel            string  `json:"slotLabel"`
	ServicePrice         float64 `json:"servicePrice"`
	FinalPrice           float64 `json:"finalPrice"`
	CouponCode           *string `json:"couponCode,omitempty"`
	CreatedTransparently bool    `json:"createdTransparently"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *scheduleLead.Response) ScheduledLeadResponse {
	return ScheduledLeadResponse{
		LeadID:               result.LeadID,
		ServiceDate:          result.ServiceDate.Format(domain.DateFormat),
		TimeSlot:             result.TimeSlot.String(),
		SlotLabel:            result.SlotLabel,
		ServicePrice:         result.ServicePrice,
		FinalPrice:           result.FinalPrice,
		CouponCode:           result.CouponCode,
		CreatedTransparently: result.CreatedTransparently,
	}
}
