package create_express_lead

import (
	"context"

	createLead "github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/create_express_lead"
)

type CreateLeadUseCase interface {
	Execute(ctx context.Context, req *createLead.Request) (*createLead.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
