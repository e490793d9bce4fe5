package find_available_dates

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

// UseCase use case поиска ближайших дат со свободными слотами.
// Сканирует календарь вперёд от сегодняшнего дня, пока не соберет
// запрошенное количество открытых дат или не исчерпает горизонт.
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

// Execute выполняет use case поиска доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableDates: user=%d, company=%d, want=%d, maxScanDays=%d",
		req.UserID, req.CompanyID, req.WantCount, req.MaxScanDays)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем компанию с настроенным календарём
	company, err := uc.tenantSvc.GetCompanyWithCalendar(ctx, req.CompanyID)
	if err != nil {
		return nil, uc.mapCompanyError(req.CompanyID, err)
	}

	// 3. Загружаем таймзону компании: все вычисления одного запроса
	// идут строго в ней
	loc, err := time.LoadLocation(company.Timezone)
	if err != nil {
		uc.logger.Error("FindAvailableDates: company id=%d has invalid timezone %q", req.CompanyID, company.Timezone)
		return nil, fmt.Errorf("%w: invalid timezone %q", ErrCompanyMisconfigured, company.Timezone)
	}

	// 4. Действующая политика: календарь -> компания -> дефолты сервиса
	policy, err := uc.effectivePolicy(ctx, req.CompanyID, company.CalendarID)
	if err != nil {
		return nil, err
	}

	// Расписание компании из реестра; если в нем нет ни одного рабочего
	// дня (компания не настроила часы), действует расписание по умолчанию
	schedule := company.WorkingHours.ToDomain()
	if !schedule.HasOpenDays() {
		uc.logger.Warn("FindAvailableDates: company id=%d has no working hours, using default schedule", req.CompanyID)
		schedule = domain.DefaultWeekSchedule()
	}

	// 5. Сканируем дни вперёд от сегодняшнего
	now := uc.timeProvider.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	maxScanDays := req.MaxScanDays
	if maxScanDays == 0 {
		maxScanDays = policy.MaxScanDays
	}

	days := make([]domain.AvailableDay, 0, req.WantCount)

	for offset := 0; offset < maxScanDays && len(days) < req.WantCount; offset++ {
		// Ограничение глубины бронирования двигает горизонт, но не расширяет его
		if policy.HasAdvanceBookingLimit() && offset > policy.AdvanceBookingDays {
			break
		}

		date := today.AddDate(0, 0, offset)
		day := schedule.DayFor(date.Weekday())

		// Закрытый день тратит бюджет сканирования без запроса к календарю
		if !day.HasHours() {
			continue
		}

		hasSlots, err := uc.engine.HasAvailability(ctx, company.CalendarID, date, day, now, policy)
		if err != nil {
			return nil, uc.mapEngineError(req.CompanyID, err)
		}

		if hasSlots {
			days = append(days, domain.NewAvailableDay(len(days), date, day))
		}
	}

	// Меньше запрошенного (в том числе ноль) - валидный результат
	// "мало/нет свободных дат", а не ошибка
	uc.logger.Info("FindAvailableDates: company=%d, found=%d of %d (scanned up to %d days)",
		req.CompanyID, len(days), req.WantCount, maxScanDays)

	return &Response{
		CompanyID: req.CompanyID,
		Timezone:  company.Timezone,
		Days:      days,
	}, nil
}

// effectivePolicy возвращает действующую политику компании
// или дефолты сервиса, если в БД политики нет
func (uc *UseCase) effectivePolicy(ctx context.Context, companyID int64, calendarID string) (domain.SchedulingPolicy, error) {
	stored, err := uc.policyRepo.GetEffective(ctx, companyID, &calendarID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			uc.logger.Info("FindAvailableDates: using default policy for company=%d", companyID)
			return uc.defaults, nil
		}
		uc.logger.Error("FindAvailableDates: failed to get policy for company=%d: %v", companyID, err)
		return domain.SchedulingPolicy{}, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	uc.logger.Info("FindAvailableDates: using policy id=%d for company=%d", stored.ID, companyID)
	return stored.ToSchedulingPolicy(), nil
}

// mapCompanyError транслирует ошибки TenantService в ошибки usecase
func (uc *UseCase) mapCompanyError(companyID int64, err error) error {
	switch {
	case errors.Is(err, tenantClient.ErrCompanyNotFound):
		uc.logger.Warn("FindAvailableDates: company id=%d not found", companyID)
		return ErrCompanyNotFound
	case errors.Is(err, tenantClient.ErrCompanyWithoutCalendar):
		uc.logger.Warn("FindAvailableDates: company id=%d has no calendar", companyID)
		return fmt.Errorf("%w: no calendar configured", ErrCompanyMisconfigured)
	case errors.Is(err, tenantClient.ErrUnavailable):
		uc.logger.Error("FindAvailableDates: tenant service unavailable for company=%d: %v", companyID, err)
		return fmt.Errorf("%w: tenant service: %v", ErrCalendarUnavailable, err)
	default:
		uc.logger.Error("FindAvailableDates: failed to get company id=%d: %v", companyID, err)
		return fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}
}

// mapEngineError транслирует ошибки движка/календаря в ошибки usecase.
// Недоступность календаря никогда не превращается в "нет свободных дат".
func (uc *UseCase) mapEngineError(companyID int64, err error) error {
	switch {
	case errors.Is(err, calendarClient.ErrConfiguration):
		uc.logger.Error("FindAvailableDates: calendar misconfigured for company=%d: %v", companyID, err)
		return fmt.Errorf("%w: %v", ErrCompanyMisconfigured, err)
	case errors.Is(err, calendarClient.ErrUnavailable):
		uc.logger.Error("FindAvailableDates: calendar unavailable for company=%d: %v", companyID, err)
		return fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	default:
		uc.logger.Error("FindAvailableDates: engine error for company=%d: %v", companyID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
