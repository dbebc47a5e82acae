package schedule_express_lead

import (
	"time"

	"github.com/gaadimech/GaadiMech-PWA-sub001/pkg/types"
)

// Request модель запроса на планирование экспресс-лида (фаза 2)
type Request struct {
	SessionID   string
	ServiceDate time.Time
	TimeSlot    types.TimeString
}

// Response модель ответа с запланированным лидом
type Response struct {
	LeadID      int64
	ServiceDate time.Time
	TimeSlot    types.TimeString
	SlotLabel   string

	ServicePrice float64
	FinalPrice   float64
	CouponCode   *string

	// CreatedTransparently true, если фаза 2 выполнилась без кешированного
	// лида и создала новый (например, после перезагрузки страницы)
	CreatedTransparently bool
}
