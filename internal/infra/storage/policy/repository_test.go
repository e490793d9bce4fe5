package policy

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func policyRows(p *domain.CompanySchedulingPolicy) *sqlmock.Rows {
	return sqlmock.NewRows(policyColumns).AddRow(
		p.ID, p.CompanyID, p.CalendarID,
		p.SlotDurationMinutes, p.MinBookingNoticeMinutes, p.MaxConcurrentBookings,
		p.AdvanceBookingDays, p.PageSize, p.MaxScanDays,
		p.CreatedAt, p.UpdatedAt,
	)
}

func samplePolicy() *domain.CompanySchedulingPolicy {
	return &domain.CompanySchedulingPolicy{
		ID:                      1,
		CompanyID:               42,
		CalendarID:              nil,
		SlotDurationMinutes:     60,
		MinBookingNoticeMinutes: 30,
		MaxConcurrentBookings:   1,
		AdvanceBookingDays:      14,
		PageSize:                9,
		MaxScanDays:             30,
		CreatedAt:               time.Now(),
		UpdatedAt:               time.Now(),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO company_scheduling_policies").
		WithArgs(int64(42), nil, 60, 30, 1, 14, 9, 30).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(7), time.Now(), time.Now()))

	created, err := repo.Create(context.Background(), &domain.CompanySchedulingPolicy{
		CompanyID:               42,
		SlotDurationMinutes:     60,
		MinBookingNoticeMinutes: 30,
		MaxConcurrentBookings:   1,
		AdvanceBookingDays:      14,
		PageSize:                9,
		MaxScanDays:             30,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCompanyAndCalendar(t *testing.T) {
	repo, mock := newMockRepo(t)
	want := samplePolicy()

	mock.ExpectQuery("SELECT .+ FROM company_scheduling_policies").
		WithArgs(int64(42)).
		WillReturnRows(policyRows(want))

	got, err := repo.GetByCompanyAndCalendar(context.Background(), 42, nil)

	require.NoError(t, err)
	assert.Equal(t, want.CompanyID, got.CompanyID)
	assert.Equal(t, want.SlotDurationMinutes, got.SlotDurationMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCompanyAndCalendar_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM company_scheduling_policies").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(policyColumns))

	_, err := repo.GetByCompanyAndCalendar(context.Background(), 42, nil)

	assert.ErrorIs(t, err, ErrPolicyNotFound)
}

func TestRepository_GetEffective_CalendarLevelWins(t *testing.T) {
	repo, mock := newMockRepo(t)

	calendarPolicy := samplePolicy()
	calendarPolicy.CalendarID = ptr.Ptr("cal-1")
	calendarPolicy.SlotDurationMinutes = 45

	mock.ExpectQuery("SELECT .+ FROM company_scheduling_policies").
		WithArgs(int64(42), "cal-1").
		WillReturnRows(policyRows(calendarPolicy))

	got, err := repo.GetEffective(context.Background(), 42, ptr.Ptr("cal-1"))

	require.NoError(t, err)
	assert.Equal(t, 45, got.SlotDurationMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetEffective_FallsBackToCompanyLevel(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Политики уровня календаря нет
	mock.ExpectQuery("SELECT .+ FROM company_scheduling_policies").
		WithArgs(int64(42), "cal-1").
		WillReturnRows(sqlmock.NewRows(policyColumns))

	// Политика уровня компании есть
	mock.ExpectQuery("SELECT .+ FROM company_scheduling_policies").
		WithArgs(int64(42)).
		WillReturnRows(policyRows(samplePolicy()))

	got, err := repo.GetEffective(context.Background(), 42, ptr.Ptr("cal-1"))

	require.NoError(t, err)
	assert.Nil(t, got.CalendarID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetEffective_NotFoundAtAnyLevel(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM company_scheduling_policies").
		WithArgs(int64(42), "cal-1").
		WillReturnRows(sqlmock.NewRows(policyColumns))
	mock.ExpectQuery("SELECT .+ FROM company_scheduling_policies").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(policyColumns))

	_, err := repo.GetEffective(context.Background(), 42, ptr.Ptr("cal-1"))

	assert.ErrorIs(t, err, ErrPolicyNotFound)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("UPDATE company_scheduling_policies").
		WithArgs(60, 30, 1, 14, 9, 30, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
			AddRow(time.Now(), time.Now()))

	updated, err := repo.Update(context.Background(), 7, &domain.CompanySchedulingPolicy{
		SlotDurationMinutes:     60,
		MinBookingNoticeMinutes: 30,
		MaxConcurrentBookings:   1,
		AdvanceBookingDays:      14,
		PageSize:                9,
		MaxScanDays:             30,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("UPDATE company_scheduling_policies").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	_, err := repo.Update(context.Background(), 7, samplePolicy())

	assert.ErrorIs(t, err, ErrPolicyNotFound)
}
