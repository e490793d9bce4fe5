package domain

import "time"

// SchedulingPolicy effective per-tenant slot computation parameters.
// Собирается из политики компании в БД поверх дефолтов сервиса;
// передаётся в движок расчёта слотов как единственный источник настроек.
type SchedulingPolicy struct {
	SlotDurationMinutes     int
	MinBookingNoticeMinutes int
	MaxConcurrentBookings   int
	AdvanceBookingDays      int // 0 = unlimited
	PageSize                int
	MaxScanDays             int
}

// DefaultSchedulingPolicy возвращает политику из дефолтных значений сервиса
func DefaultSchedulingPolicy() SchedulingPolicy {
	return SchedulingPolicy{
		SlotDurationMinutes:     DefaultSlotDurationMinutes,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
		MaxConcurrentBookings:   DefaultMaxConcurrentBookings,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		PageSize:                DefaultPageSize,
		MaxScanDays:             DefaultMaxScanDays,
	}
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance slots are offered
func (p SchedulingPolicy) HasAdvanceBookingLimit() bool {
	return p.AdvanceBookingDays > 0
}

// SupportsParallelBookings returns true if a slot admits more than one booking
func (p SchedulingPolicy) SupportsParallelBookings() bool {
	return p.MaxConcurrentBookings > 1
}

// SlotDuration returns the slot length as time.Duration
func (p SchedulingPolicy) SlotDuration() time.Duration {
	return time.Duration(p.SlotDurationMinutes) * time.Minute
}

// BookingNotice returns the minimum lead time before the earliest bookable slot
func (p SchedulingPolicy) BookingNotice() time.Duration {
	return time.Duration(p.MinBookingNoticeMinutes) * time.Minute
}

// CompanySchedulingPolicy per-tenant policy row stored in the database.
// Supports two levels:
// 1. Calendar-specific (company_id, calendar_id)
// 2. Company-wide (company_id, NULL)
type CompanySchedulingPolicy struct {
	ID                      int64
	CompanyID               int64
	CalendarID              *string // NULL = policy for all company calendars
	SlotDurationMinutes     int
	MinBookingNoticeMinutes int
	MaxConcurrentBookings   int
	AdvanceBookingDays      int
	PageSize                int
	MaxScanDays             int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsCompanyWide returns true if this policy applies to all company calendars
func (c *CompanySchedulingPolicy) IsCompanyWide() bool {
	return c.CalendarID == nil
}

// IsCalendarSpecific returns true if this policy targets a single calendar
func (c *CompanySchedulingPolicy) IsCalendarSpecific() bool {
	return c.CalendarID != nil
}

// ToSchedulingPolicy converts the stored row into an effective policy
func (c *CompanySchedulingPolicy) ToSchedulingPolicy() SchedulingPolicy {
	return SchedulingPolicy{
		SlotDurationMinutes:     c.SlotDurationMinutes,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		MaxConcurrentBookings:   c.MaxConcurrentBookings,
		AdvanceBookingDays:      c.AdvanceBookingDays,
		PageSize:                c.PageSize,
		MaxScanDays:             c.MaxScanDays,
	}
}
