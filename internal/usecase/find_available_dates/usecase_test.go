package find_available_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	policyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/policy"
	calendarClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/googlecalendar"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/tenantservice"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type fakePolicyRepo struct {
	policy *domain.CompanySchedulingPolicy
	err    error
}

func (f *fakePolicyRepo) GetEffective(_ context.Context, _ int64, _ *string) (*domain.CompanySchedulingPolicy, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.policy, nil
}

type fakeTenantClient struct {
	company *tenantservice.Company
	err     error
}

func (f *fakeTenantClient) GetCompanyWithCalendar(_ context.Context, _ int64) (*tenantservice.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.company, nil
}

// fakeEngine отвечает "есть слоты" по дням недели и считает вызовы по датам
type fakeEngine struct {
	openWeekdays map[time.Weekday]bool
	err          error
	checkedDates []string
}

func (f *fakeEngine) HasAvailability(_ context.Context, _ string, date time.Time, _ domain.DaySchedule, _ time.Time, _ domain.SchedulingPolicy) (bool, error) {
	f.checkedDates = append(f.checkedDates, date.Format(domain.DateFormat))
	if f.err != nil {
		return false, f.err
	}
	return f.openWeekdays[date.Weekday()], nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func weekdaysOnly() tenantservice.WeekSchedule {
	open := tenantservice.DaySchedule{IsOpen: true, OpenTime: ptr.Ptr("07:00"), CloseTime: ptr.Ptr("18:00")}
	return tenantservice.WeekSchedule{
		Monday:    open,
		Tuesday:   open,
		Wednesday: open,
		Thursday:  open,
		Friday:    open,
		Saturday:  tenantservice.DaySchedule{IsOpen: true, OpenTime: ptr.Ptr("07:00"), CloseTime: ptr.Ptr("14:00")},
		Sunday:    tenantservice.DaySchedule{IsOpen: false},
	}
}

func testCompany() *tenantservice.Company {
	return &tenantservice.Company{
		ID:           1,
		Name:         "Wellness Clinic",
		Timezone:     "Asia/Kolkata",
		CalendarID:   "cal-1",
		ManagerIDs:   []int64{100},
		WorkingHours: weekdaysOnly(),
	}
}

func newTestUseCase(policies *fakePolicyRepo, tenants *fakeTenantClient, engine *fakeEngine, now time.Time) *UseCase {
	uc := NewUseCase(policies, tenants, engine, domain.DefaultSchedulingPolicy(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func TestExecute_CollectsRequestedDates(t *testing.T) {
	loc := kolkata(t)
	// Понедельник 9 июня 2025, вся рабочая неделя свободна
	now := time.Date(2025, 6, 9, 10, 0, 0, 0, loc)

	engine := &fakeEngine{openWeekdays: map[time.Weekday]bool{
		time.Monday: true, time.Tuesday: true, time.Wednesday: true,
		time.Thursday: true, time.Friday: true, time.Saturday: true,
	}}
	uc := newTestUseCase(
		&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		&fakeTenantClient{company: testCompany()},
		engine,
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 100, CompanyID: 1, WantCount: 3})

	require.NoError(t, err)
	require.Len(t, resp.Days, 3)
	assert.Equal(t, "Asia/Kolkata", resp.Timezone)
	// Ids позиционные, по порядку выдачи
	assert.Equal(t, "calendar_day_0", resp.Days[0].ID)
	assert.Equal(t, "calendar_day_1", resp.Days[1].ID)
	assert.Equal(t, "calendar_day_2", resp.Days[2].ID)
	assert.Equal(t, "2025-06-09", resp.Days[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "2025-06-10", resp.Days[1].Date.Format(domain.DateFormat))
	assert.Equal(t, "2025-06-11", resp.Days[2].Date.Format(domain.DateFormat))
}

func TestExecute_SkipsBusyDaysKeepingPositionalIDs(t *testing.T) {
	loc := kolkata(t)
	// Понедельник и среда заняты, вторник/четверг/пятница свободны
	now := time.Date(2025, 6, 9, 10, 0, 0, 0, loc)

	engine := &fakeEngine{openWeekdays: map[time.Weekday]bool{
		time.Tuesday: true, time.Thursday: true, time.Friday: true,
	}}
	uc := newTestUseCase(
		&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		&fakeTenantClient{company: testCompany()},
		engine,
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 100, CompanyID: 1, WantCount: 3})

	require.NoError(t, err)
	require.Len(t, resp.Days, 3)
	// Ids идут подряд по выдаче, а не по смещению от сегодня
	assert.Equal(t, "calendar_day_0", resp.Days[0].ID)
	assert.Equal(t, "2025-06-10", resp.Days[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "calendar_day_1", resp.Days[1].ID)
	assert.Equal(t, "2025-06-12", resp.Days[1].Date.Format(domain.DateFormat))
	assert.Equal(t, "calendar_day_2", resp.Days[2].ID)
	assert.Equal(t, "2025-06-13", resp.Days[2].Date.Format(domain.DateFormat))
}

func TestExecute_ClosedDaysSkipEngine(t *testing.T) {
	loc := kolkata(t)
	// Суббота 14 июня: суббота рабочая, воскресенье закрыто
	now := time.Date(2025, 6, 14, 8, 0, 0, 0, loc)

	engine := &fakeEngine{openWeekdays: map[time.Weekday]bool{
		time.Saturday: true, time.Monday: true,
	}}
	uc := newTestUseCase(
		&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		&fakeTenantClient{company: testCompany()},
		engine,
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 100, CompanyID: 1, WantCount: 2})

	require.NoError(t, err)
	require.Len(t, resp.Days, 2)
	// Воскресенье 15 июня не должно доходить до движка вообще
	assert.NotContains(t, engine.checkedDates, "2025-06-15")
	assert.Equal(t, "2025-06-14", resp.Days[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "2025-06-16", resp.Days[1].Date.Format(domain.DateFormat))
}

func TestExecute_EmptyScheduleUsesDefault(t *testing.T) {
	loc := kolkata(t)
	// Суббота 14 июня: по умолчанию суббота рабочая, воскресенье выходной
	now := time.Date(2025, 6, 14, 8, 0, 0, 0, loc)

	company := testCompany()
	company.WorkingHours = tenantservice.WeekSchedule{} // часы не настроены

	engine := &fakeEngine{openWeekdays: map[time.Weekday]bool{
		time.Saturday: true, time.Sunday: true, time.Monday: true,
	}}
	uc := newTestUseCase(
		&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		&fakeTenantClient{company: company},
		engine,
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 100, CompanyID: 1, WantCount: 2})

	require.NoError(t, err)
	require.Len(t, resp.Days, 2)
	// Дефолтное расписание закрывает воскресенье независимо от движка
	assert.Equal(t, "2025-06-14", resp.Days[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "2025-06-16", resp.Days[1].Date.Format(domain.DateFormat))
}

func TestExecute_ScanHorizonReturnsFewer(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2025, 6, 9, 10, 0, 0, 0, loc)

	// Свободна только суббота: за 4 дня сканирования не встретится ни разу
	engine := &fakeEngine{openWeekdays: map[time.Weekday]bool{time.Saturday: true}}
	uc := newTestUseCase(
		&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		&fakeTenantClient{company: testCompany()},
		engine,
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 100, CompanyID: 1, WantCount: 3, MaxScanDays: 4})

	// Меньше запрошенного - не ошибка
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestExecute_CalendarUnavailableIsNotEmptyResult(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2025, 6, 9, 10, 0, 0, 0, loc)

	engine := &fakeEngine{err: calendarClient.ErrUnavailable}
	uc := newTestUseCase(
		&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		&fakeTenantClient{company: testCompany()},
		engine,
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 100, CompanyID: 1, WantCount: 3})

	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
}

func TestExecute_CalendarMisconfigured(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2025, 6, 9, 10, 0, 0, 0, loc)

	engine := &fakeEngine{err: calendarClient.ErrConfiguration}
	uc := newTestUseCase(
		&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		&fakeTenantClient{company: testCompany()},
		engine,
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 100, CompanyID: 1, WantCount: 3})

	assert.ErrorIs(t, err, ErrCompanyMisconfigured)
}

func TestExecute_CompanyErrors(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2025, 6, 9, 10, 0, 0, 0, loc)

	tests := []struct {
		name      string
		tenantErr error
		wantErr   error
	}{
		{"not found", tenantservice.ErrCompanyNotFound, ErrCompanyNotFound},
		{"no calendar", tenantservice.ErrCompanyWithoutCalendar, ErrCompanyMisconfigured},
		{"registry down", tenantservice.ErrUnavailable, ErrCalendarUnavailable},
		{"internal", tenantservice.ErrInternal, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(
				&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
				&fakeTenantClient{err: tt.tenantErr},
				&fakeEngine{},
				now,
			)

			_, err := uc.Execute(context.Background(), &Request{UserID: 100, CompanyID: 1, WantCount: 3})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_InvalidTimezoneIsMisconfiguration(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2025, 6, 9, 10, 0, 0, 0, loc)

	company := testCompany()
	company.Timezone = "Mars/Olympus_Mons"
	uc := newTestUseCase(
		&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		&fakeTenantClient{company: company},
		&fakeEngine{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: 100, CompanyID: 1, WantCount: 3})

	assert.ErrorIs(t, err, ErrCompanyMisconfigured)
}

func TestExecute_UsesStoredPolicyScanHorizon(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2025, 6, 9, 10, 0, 0, 0, loc)

	stored := &domain.CompanySchedulingPolicy{
		ID:                      7,
		CompanyID:               1,
		SlotDurationMinutes:     domain.DefaultSlotDurationMinutes,
		MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
		MaxConcurrentBookings:   1,
		PageSize:                domain.DefaultPageSize,
		MaxScanDays:             2,
	}

	engine := &fakeEngine{openWeekdays: map[time.Weekday]bool{time.Friday: true}}
	uc := newTestUseCase(
		&fakePolicyRepo{policy: stored},
		&fakeTenantClient{company: testCompany()},
		engine,
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 100, CompanyID: 1, WantCount: 3})

	require.NoError(t, err)
	assert.Empty(t, resp.Days)
	// Горизонт из политики: проверены только понедельник и вторник
	assert.Equal(t, []string{"2025-06-09", "2025-06-10"}, engine.checkedDates)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakePolicyRepo{}, &fakeTenantClient{}, &fakeEngine{}, time.Now())

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero company", &Request{CompanyID: 0, WantCount: 3}},
		{"zero want count", &Request{CompanyID: 1, WantCount: 0}},
		{"want count too large", &Request{CompanyID: 1, WantCount: maxWantCount + 1}},
		{"negative scan days", &Request{CompanyID: 1, WantCount: 3, MaxScanDays: -1}},
		{"scan days over limit", &Request{CompanyID: 1, WantCount: 3, MaxScanDays: domain.MaxScanDaysLimit + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
