package get_available_slots

import (
	"context"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
)

// UseCase use case для получения слотов экспресс-сервиса на дату
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем все окна каталога с флагом доступности
	slots := make([]Slot, 0, len(domain.ExpressSlotWindows))
	for i, window := range domain.ExpressSlotWindows {
		slots = append(slots, Slot{
			StartTime:       window.StartTime,
			EndTime:         window.EndTime,
			Label:           window.Label,
			DurationMinutes: window.DurationMinutes,
			Available:       isSlotAvailable(req.Date, i, now),
		})
	}

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
