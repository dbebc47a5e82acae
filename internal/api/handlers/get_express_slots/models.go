package get_express_slots

import (
	getSlots "github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/get_available_slots"
)

// SlotResponse HTTP model одного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Label           string `json:"label"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *getSlots.Response, dateFormat string) SlotsResponse {
	slots := make([]SlotResponse, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       s.StartTime.String(),
			EndTime:         s.EndTime.String(),
			Label:           s.Label,
			DurationMinutes: s.DurationMinutes,
			Available:       s.Available,
		})
	}
	return SlotsResponse{
		Date:  result.Date.Format(dateFormat),
		Slots: slots,
	}
}
