package get_slot_page

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	policyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/policy"
	calendarClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/googlecalendar"
	tenantClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/tenantservice"
)

// UseCase use case выдачи страницы свободных слотов на конкретную дату
type UseCase struct {
	policyRepo   PolicyRepository
	tenantSvc    TenantServiceClient
	engine       AvailabilityEngine
	defaults     domain.SchedulingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	policyRepo PolicyRepository,
	tenantSvc TenantServiceClient,
	engine AvailabilityEngine,
	defaults domain.SchedulingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		policyRepo:   policyRepo,
		tenantSvc:    tenantSvc,
		engine:       engine,
		defaults:     defaults,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения страницы слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlotPage: user=%d, company=%d, date=%s, page=%d",
		req.UserID, req.CompanyID, req.Date, req.Page)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlotPage: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем компанию с настроенным календарём
	company, err := uc.tenantSvc.GetCompanyWithCalendar(ctx, req.CompanyID)
	if err != nil {
		return nil, uc.mapCompanyError(req.CompanyID, err)
	}

	loc, err := time.LoadLocation(company.Timezone)
	if err != nil {
		uc.logger.Error("GetSlotPage: company id=%d has invalid timezone %q", req.CompanyID, company.Timezone)
		return nil, fmt.Errorf("%w: invalid timezone %q", ErrCompanyMisconfigured, company.Timezone)
	}

	// 3. Действующая политика: календарь -> компания -> дефолты сервиса
	policy, err := uc.effectivePolicy(ctx, req.CompanyID, company.CalendarID)
	if err != nil {
		return nil, err
	}

	// 4. Дата запроса трактуется в таймзоне компании
	date, err := time.ParseInLocation(domain.DateFormat, req.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: date must match %s", ErrInvalidInput, domain.DateFormat)
	}

	// Расписание компании из реестра; если в нем нет ни одного рабочего
	// дня (компания не настроила часы), действует расписание по умолчанию
	schedule := company.WorkingHours.ToDomain()
	if !schedule.HasOpenDays() {
		uc.logger.Warn("GetSlotPage: company id=%d has no working hours, using default schedule", req.CompanyID)
		schedule = domain.DefaultWeekSchedule()
	}
	day := schedule.DayFor(date.Weekday())

	// 5. Полный отфильтрованный список строится каждый раз заново:
	// нумерация страниц стабильна только относительно одного ответа
	slots, err := uc.engine.AvailableSlots(ctx, company.CalendarID, date, day, uc.timeProvider.Now().In(loc), policy)
	if err != nil {
		return nil, uc.mapEngineError(req.CompanyID, err)
	}

	page := domain.NewSlotPage(slots, req.Page, policy.PageSize)

	uc.logger.Info("GetSlotPage: company=%d, date=%s, total=%d, page=%d of %d, returned=%d",
		req.CompanyID, req.Date, page.TotalSlots, page.CurrentPage, page.TotalPages, len(page.Slots))

	return &Response{
		CompanyID: req.CompanyID,
		Date:      req.Date,
		Timezone:  company.Timezone,
		Page:      page,
	}, nil
}

// effectivePolicy возвращает действующую политику компании
// или дефолты сервиса, если в БД политики нет
func (uc *UseCase) effectivePolicy(ctx context.Context, companyID int64, calendarID string) (domain.SchedulingPolicy, error) {
	stored, err := uc.policyRepo.GetEffective(ctx, companyID, &calendarID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			uc.logger.Info("GetSlotPage: using default policy for company=%d", companyID)
			return uc.defaults, nil
		}
		uc.logger.Error("GetSlotPage: failed to get policy for company=%d: %v", companyID, err)
		return domain.SchedulingPolicy{}, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	uc.logger.Info("GetSlotPage: using policy id=%d for company=%d", stored.ID, companyID)
	return stored.ToSchedulingPolicy(), nil
}

// mapCompanyError транслирует ошибки TenantService в ошибки usecase
func (uc *UseCase) mapCompanyError(companyID int64, err error) error {
	switch {
	case errors.Is(err, tenantClient.ErrCompanyNotFound):
		uc.logger.Warn("GetSlotPage: company id=%d not found", companyID)
		return ErrCompanyNotFound
	case errors.Is(err, tenantClient.ErrCompanyWithoutCalendar):
		uc.logger.Warn("GetSlotPage: company id=%d has no calendar", companyID)
		return fmt.Errorf("%w: no calendar configured", ErrCompanyMisconfigured)
	case errors.Is(err, tenantClient.ErrUnavailable):
		uc.logger.Error("GetSlotPage: tenant service unavailable for company=%d: %v", companyID, err)
		return fmt.Errorf("%w: tenant service: %v", ErrCalendarUnavailable, err)
	default:
		uc.logger.Error("GetSlotPage: failed to get company id=%d: %v", companyID, err)
		return fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}
}

// mapEngineError транслирует ошибки движка/календаря в ошибки usecase.
// Недоступность календаря никогда не превращается в пустую страницу.
func (uc *UseCase) mapEngineError(companyID int64, err error) error {
	switch {
	case errors.Is(err, calendarClient.ErrConfiguration):
		uc.logger.Error("GetSlotPage: calendar misconfigured for company=%d: %v", companyID, err)
		return fmt.Errorf("%w: %v", ErrCompanyMisconfigured, err)
	case errors.Is(err, calendarClient.ErrUnavailable):
		uc.logger.Error("GetSlotPage: calendar unavailable for company=%d: %v", companyID, err)
		return fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	default:
		uc.logger.Error("GetSlotPage: engine error for company=%d: %v", companyID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
