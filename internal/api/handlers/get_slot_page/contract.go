package get_slot_page

import (
	"context"

	getSlotPage "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_slot_page"
)

type GetSlotPageUseCase interface {
	Execute(ctx context.Context, req *getSlotPage.Request) (*getSlotPage.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
