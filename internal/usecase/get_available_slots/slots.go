package get_available_slots

import (
	"hash/fnv"
	"time"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
)

// simulatedBusyWeights вероятность занятости слота в процентах по индексу
// окна. Утренние и вечерние окна заняты чаще дневных
var simulatedBusyWeights = []uint32{35, 20, 15, 20, 40}

// TODO: заменить симуляцию на реальный инвентарь механиков, когда CMS начнет
// отдавать занятость по слотам

// isSlotAvailable определяет доступность слота на дату.
// Результат детерминирован для пары (дата, индекс слота), чтобы
// повторные запросы и тесты видели одну и ту же картину
func isSlotAvailable(date time.Time, slotIndex int, now time.Time) bool {
	slot := domain.ExpressSlotWindows[slotIndex]

	// Слоты сегодняшнего дня, начинающиеся раньше now + минимальный
	// запас на выезд, недоступны
	if truncateToDay(date).Equal(truncateToDay(now)) {
		startMinutes, err := slot.StartTime.Minutes()
		if err != nil {
			return false
		}

		cutoff := now.Add(time.Duration(domain.ExpressMinNoticeMinutes) * time.Minute)
		if startMinutes < cutoff.Hour()*60+cutoff.Minute() {
			return false
		}
	}

	h := fnv.New32a()
	h.Write([]byte(date.Format(domain.DateFormat)))
	h.Write([]byte{byte(slotIndex)})
	return h.Sum32()%100 >= simulatedBusyWeights[slotIndex]
}
