package find_available_dates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/tenantservice"
)

// PolicyRepository интерфейс репозитория политик расчёта слотов
type PolicyRepository interface {
	// GetEffective получает действующую политику с учетом иерархии приоритетов
	GetEffective(ctx context.Context, companyID int64, calendarID *string) (*domain.CompanySchedulingPolicy, error)
}

// TenantServiceClient интерфейс клиента для TenantService
type TenantServiceClient interface {
	GetCompanyWithCalendar(ctx context.Context, companyID int64) (*tenantservice.Company, error)
}

// AvailabilityEngine интерфейс движка расчёта доступности
type AvailabilityEngine interface {
	HasAvailability(ctx context.Context, calendarID string, date time.Time, day domain.DaySchedule, now time.Time, policy domain.SchedulingPolicy) (bool, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
