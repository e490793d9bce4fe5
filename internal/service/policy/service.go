package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	policyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/policy"
	tenantClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/tenantservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/policy/models"
)

// Service сервис управления политиками расчёта слотов
type Service struct {
	policyRepo PolicyRepository
	tenantSvc  TenantServiceClient
	defaults   domain.SchedulingPolicy
	logger     Logger
}

// NewService создает новый экземпляр сервиса политик
func NewService(
	policyRepo PolicyRepository,
	tenantSvc TenantServiceClient,
	defaults domain.SchedulingPolicy,
	logger Logger,
) *Service {
	return &Service{
		policyRepo: policyRepo,
		tenantSvc:  tenantSvc,
		defaults:   defaults,
		logger:     logger,
	}
}

// GetEffective получает действующую политику компании.
// Публичный метод - доступен всем.
// Приоритет: политика календаря > политика компании > дефолты сервиса
func (s *Service) GetEffective(ctx context.Context, req *models.GetPolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("GetEffective: fetching policy for company=%d", req.CompanyID)

	if req.CompanyID <= 0 {
		return nil, fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	// Компания нужна ради её calendar id: уровень календаря ищется по нему
	company, err := s.getCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	var calendarID *string
	if company.CalendarID != "" {
		calendarID = &company.CalendarID
	}

	stored, err := s.policyRepo.GetEffective(ctx, req.CompanyID, calendarID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Info("GetEffective: no stored policy for company=%d, returning defaults", req.CompanyID)
			return models.FromDefaultPolicy(req.CompanyID, s.defaults), nil
		}
		s.logger.Error("GetEffective: repository error for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: GetEffective - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetEffective: successfully fetched policy id=%d for company=%d", stored.ID, req.CompanyID)
	return models.FromDomainPolicy(stored), nil
}

// Upsert создает политику компании или полностью заменяет существующую.
// Доступно только менеджерам компании
func (s *Service) Upsert(ctx context.Context, req *models.UpsertPolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("Upsert: upserting policy for company=%d, calendar=%v by user=%d",
		req.CompanyID, req.CalendarID, req.UserID)

	// 1. Валидируем входные данные
	if err := s.validatePolicyData(req); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем компанию для проверки прав доступа
	company, err := s.getCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	// 3. Проверяем права доступа (только менеджер компании)
	if !company.IsManager(req.UserID) {
		s.logger.Warn("Upsert: user=%d is not a manager of company=%d", req.UserID, req.CompanyID)
		return nil, ErrAccessDenied
	}

	// 4. Политика на конкретный календарь должна ссылаться на календарь компании
	if req.CalendarID != nil && *req.CalendarID != company.CalendarID {
		s.logger.Warn("Upsert: calendar %q does not belong to company=%d", *req.CalendarID, req.CompanyID)
		return nil, fmt.Errorf("%w: calendar does not belong to the company", ErrInvalidInput)
	}

	// 5. Обновляем существующую строку того же уровня или создаём новую
	existing, err := s.policyRepo.GetByCompanyAndCalendar(ctx, req.CompanyID, req.CalendarID)
	if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
		s.logger.Error("Upsert: failed to check existing policy: %v", err)
		return nil, fmt.Errorf("%w: failed to check existing policy: %v", ErrInternal, err)
	}

	if existing != nil {
		updated, err := s.policyRepo.Update(ctx, existing.ID, req.ToDomainPolicy())
		if err != nil {
			s.logger.Error("Upsert: repository error updating policy id=%d: %v", existing.ID, err)
			return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("Upsert: successfully updated policy id=%d", updated.ID)
		return models.FromDomainPolicy(updated), nil
	}

	created, err := s.policyRepo.Create(ctx, req.ToDomainPolicy())
	if err != nil {
		s.logger.Error("Upsert: repository error creating policy for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully created policy id=%d", created.ID)
	return models.FromDomainPolicy(created), nil
}

// getCompany получает компанию, транслируя ошибки клиента в ошибки сервиса
func (s *Service) getCompany(ctx context.Context, companyID int64) (*tenantClient.Company, error) {
	company, err := s.tenantSvc.GetCompany(ctx, companyID)
	if err != nil {
		switch {
		case errors.Is(err, tenantClient.ErrCompanyNotFound):
			s.logger.Warn("getCompany: company id=%d not found", companyID)
			return nil, ErrCompanyNotFound
		case errors.Is(err, tenantClient.ErrUnavailable):
			s.logger.Error("getCompany: tenant service unavailable for company=%d: %v", companyID, err)
			return nil, fmt.Errorf("%w: %v", ErrTenantServiceUnavailable, err)
		default:
			s.logger.Error("getCompany: failed to get company id=%d: %v", companyID, err)
			return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
		}
	}
	return company, nil
}

// validatePolicyData валидирует параметры политики по бизнес-правилам
func (s *Service) validatePolicyData(req *models.UpsertPolicyRequest) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if req.MinBookingNoticeMinutes < domain.MinBookingNoticeMinutes || req.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
	}

	if req.MaxConcurrentBookings < domain.MinConcurrentBookings || req.MaxConcurrentBookings > domain.MaxConcurrentBookings {
		return fmt.Errorf("%w: maxConcurrentBookings must be between %d and %d",
			ErrInvalidInput, domain.MinConcurrentBookings, domain.MaxConcurrentBookings)
	}

	if req.AdvanceBookingDays < domain.MinAdvanceBookingDays || req.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if req.PageSize < domain.MinPageSize || req.PageSize > domain.MaxPageSize {
		return fmt.Errorf("%w: pageSize must be between %d and %d",
			ErrInvalidInput, domain.MinPageSize, domain.MaxPageSize)
	}

	if req.MaxScanDays <= 0 || req.MaxScanDays > domain.MaxScanDaysLimit {
		return fmt.Errorf("%w: maxScanDays must be between 1 and %d",
			ErrInvalidInput, domain.MaxScanDaysLimit)
	}

	return nil
}
