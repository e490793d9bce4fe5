package policy

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/tenantservice"
)

// PolicyRepository интерфейс репозитория политик расчёта слотов
type PolicyRepository interface {
	Create(ctx context.Context, policy *domain.CompanySchedulingPolicy) (*domain.CompanySchedulingPolicy, error)
	GetByCompanyAndCalendar(ctx context.Context, companyID int64, calendarID *string) (*domain.CompanySchedulingPolicy, error)
	GetEffective(ctx context.Context, companyID int64, calendarID *string) (*domain.CompanySchedulingPolicy, error)
	Update(ctx context.Context, id int64, policy *domain.CompanySchedulingPolicy) (*domain.CompanySchedulingPolicy, error)
}

// TenantServiceClient интерфейс клиента для TenantService
type TenantServiceClient interface {
	GetCompany(ctx context.Context, companyID int64) (*tenantservice.Company, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
