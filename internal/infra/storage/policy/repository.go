package policy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

// policyColumns колонки таблицы company_scheduling_policies
var policyColumns = []string{
	"id",
	"company_id",
	"calendar_id",
	"slot_duration_minutes",
	"min_booking_notice_minutes",
	"max_concurrent_bookings",
	"advance_booking_days",
	"page_size",
	"max_scan_days",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с политиками расчёта слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политик
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую политику расчёта слотов
func (r *Repository) Create(ctx context.Context, policy *domain.CompanySchedulingPolicy) (*domain.CompanySchedulingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("company_scheduling_policies").
		Columns(
			"company_id",
			"calendar_id",
			"slot_duration_minutes",
			"min_booking_notice_minutes",
			"max_concurrent_bookings",
			"advance_booking_days",
			"page_size",
			"max_scan_days",
		).
		Values(
			policy.CompanyID,
			policy.CalendarID,
			policy.SlotDurationMinutes,
			policy.MinBookingNoticeMinutes,
			policy.MaxConcurrentBookings,
			policy.AdvanceBookingDays,
			policy.PageSize,
			policy.MaxScanDays,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicatePolicy
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return policy, nil
}

// GetByCompanyAndCalendar получает политику для компании и календаря.
// calendarID = nil означает политику уровня компании (для всех календарей).
func (r *Repository) GetByCompanyAndCalendar(ctx context.Context, companyID int64, calendarID *string) (*domain.CompanySchedulingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(policyColumns...).
		From("company_scheduling_policies").
		Where(squirrel.Eq{"company_id": companyID})

	// Фильтрация по calendar_id (NULL или конкретное значение)
	if calendarID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"calendar_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"calendar_id": *calendarID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompanyAndCalendar - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanPolicy(executor.QueryRowContext(ctx, query, args...), "GetByCompanyAndCalendar")
}

// GetEffective получает действующую политику с учетом иерархии приоритетов:
// 1. Политика для конкретного календаря (company_id, calendar_id)
// 2. Политика уровня компании (company_id, NULL)
//
// Если политика не найдена ни на одном уровне, возвращает ErrPolicyNotFound -
// вызывающий слой подставляет дефолты сервиса.
func (r *Repository) GetEffective(ctx context.Context, companyID int64, calendarID *string) (*domain.CompanySchedulingPolicy, error) {
	// 1. Пробуем политику для конкретного календаря
	if calendarID != nil {
		policy, err := r.GetByCompanyAndCalendar(ctx, companyID, calendarID)
		if err == nil {
			return policy, nil
		}
		if !errors.Is(err, ErrPolicyNotFound) {
			return nil, fmt.Errorf("%w: GetEffective - calendar level: %v", ErrExecQuery, err)
		}
	}

	// 2. Пробуем политику уровня компании
	policy, err := r.GetByCompanyAndCalendar(ctx, companyID, nil)
	if err == nil {
		return policy, nil
	}
	if !errors.Is(err, ErrPolicyNotFound) {
		return nil, fmt.Errorf("%w: GetEffective - company level: %v", ErrExecQuery, err)
	}

	return nil, ErrPolicyNotFound
}

// Update обновляет политику расчёта слотов
func (r *Repository) Update(ctx context.Context, id int64, policy *domain.CompanySchedulingPolicy) (*domain.CompanySchedulingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("company_scheduling_policies").
		Set("slot_duration_minutes", policy.SlotDurationMinutes).
		Set("min_booking_notice_minutes", policy.MinBookingNoticeMinutes).
		Set("max_concurrent_bookings", policy.MaxConcurrentBookings).
		Set("advance_booking_days", policy.AdvanceBookingDays).
		Set("page_size", policy.PageSize).
		Set("max_scan_days", policy.MaxScanDays).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	policy.ID = id
	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return policy, nil
}

func (r *Repository) scanPolicy(row *sql.Row, op string) (*domain.CompanySchedulingPolicy, error) {
	var policy domain.CompanySchedulingPolicy
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&policy.ID,
		&policy.CompanyID,
		&policy.CalendarID,
		&policy.SlotDurationMinutes,
		&policy.MinBookingNoticeMinutes,
		&policy.MaxConcurrentBookings,
		&policy.AdvanceBookingDays,
		&policy.PageSize,
		&policy.MaxScanDays,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan policy: %v", ErrScanRow, op, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}
