package domain

import "github.com/gaadimech/GaadiMech-PWA-sub001/pkg/types"

// ExpressSlot is a bookable time window for an express service
type ExpressSlot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	Label           string // display label, e.g. "09:00 AM - 11:00 AM"
	DurationMinutes int
	Available       bool
}

// ExpressSlotWindows are the fixed two-hour windows offered for express
// bookings. Availability is simulated on top of this catalog
var ExpressSlotWindows = []ExpressSlot{
	{StartTime: "09:00", EndTime: "11:00", Label: "09:00 AM - 11:00 AM", DurationMinutes: ExpressSlotDurationMinutes},
	{StartTime: "11:00", EndTime: "13:00", Label: "11:00 AM - 01:00 PM", DurationMinutes: ExpressSlotDurationMinutes},
	{StartTime: "13:00", EndTime: "15:00", Label: "01:00 PM - 03:00 PM", DurationMinutes: ExpressSlotDurationMinutes},
	{StartTime: "15:00", EndTime: "17:00", Label: "03:00 PM - 05:00 PM", DurationMinutes: ExpressSlotDurationMinutes},
	{StartTime: "17:00", EndTime: "19:00", Label: "05:00 PM - 07:00 PM", DurationMinutes: ExpressSlotDurationMinutes},
}

// IsValidExpressSlot reports whether startTime matches one of the fixed
// slot windows
func IsValidExpressSlot(startTime types.TimeString) bool {
	for _, slot := range ExpressSlotWindows {
		if slot.StartTime == startTime {
			return true
		}
	}
	return false
}
