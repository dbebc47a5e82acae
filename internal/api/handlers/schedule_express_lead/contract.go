package schedule_express_lead

import (
	"context"

	scheduleLead "github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/schedule_express_lead"
)

type ScheduleLeadUseCase interface {
	Execute(ctx context.Context, req *scheduleLead.Request) (*scheduleLead.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
