package get_express_slots

import (
	"context"

	getSlots "github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/get_available_slots"
)

type GetSlotsUseCase interface {
	Execute(ctx context.Context, req *getSlots.Request) (*getSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
