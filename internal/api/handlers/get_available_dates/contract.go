package get_available_dates

import (
	"context"

	findAvailableDates "github.com/m04kA/SMC-AvailabilityService/internal/usecase/find_available_dates"
)

type FindAvailableDatesUseCase interface {
	Execute(ctx context.Context, req *findAvailableDates.Request) (*findAvailableDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
