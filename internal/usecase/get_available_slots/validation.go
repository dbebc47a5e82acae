package get_available_slots

import (
	"fmt"
	"time"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	today := truncateToDay(now)
	date := truncateToDay(req.Date)

	if date.Before(today) {
		return ErrInvalidDate
	}
	if date.After(today.AddDate(0, 0, domain.ExpressAdvanceBookingDays)) {
		return fmt.Errorf("%w: can only view %d days in advance", ErrDateTooFarInFuture, domain.ExpressAdvanceBookingDays)
	}

	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
