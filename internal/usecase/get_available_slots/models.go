package get_available_slots

import (
	"time"

	"github.com/gaadimech/GaadiMech-PWA-sub001/pkg/types"
)

// Request модель запроса на получение слотов экспресс-сервиса
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Все окна на дату с флагом доступности
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "09:00")
	EndTime         types.TimeString // Время окончания слота
	Label           string           // Отображаемая подпись ("09:00 AM - 11:00 AM")
	DurationMinutes int              // Длительность слота в минутах
	Available       bool             // Доступен ли слот для бронирования
}
