package create_payment_order

import (
	"context"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/checkout"
)

type CheckoutUseCase interface {
	Execute(ctx context.Context, req *checkout.Request) (*checkout.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
