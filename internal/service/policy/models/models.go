package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Источники действующей политики
const (
	SourceCalendar = "calendar" // политика конкретного календаря
	SourceCompany  = "company"  // политика всей компании
	SourceDefault  = "default"  // дефолты сервиса, в БД строки нет
)

// Request модели

// GetPolicyRequest запрос действующей политики компании
type GetPolicyRequest struct {
	CompanyID int64 `json:"companyId"`
}

// UpsertPolicyRequest запрос на создание или полную замену политики.
// PUT-семантика: передаются все поля целиком, частичных обновлений нет
type UpsertPolicyRequest struct {
	UserID                  int64   `json:"userId"`
	CompanyID               int64   `json:"companyId"`
	CalendarID              *string `json:"calendarId,omitempty"` // NULL = для всех календарей компании
	SlotDurationMinutes     int     `json:"slotDurationMinutes"`
	MinBookingNoticeMinutes int     `json:"minBookingNoticeMinutes"`
	MaxConcurrentBookings   int     `json:"maxConcurrentBookings"`
	AdvanceBookingDays      int     `json:"advanceBookingDays"` // 0 = без ограничений
	PageSize                int     `json:"pageSize"`
	MaxScanDays             int     `json:"maxScanDays"`
}

// Response модели

// PolicyResponse ответ с данными политики
type PolicyResponse struct {
	ID                      int64      `json:"id,omitempty"` // 0 для дефолтной политики
	CompanyID               int64      `json:"companyId"`
	CalendarID              *string    `json:"calendarId,omitempty"`
	Source                  string     `json:"source"`
	SlotDurationMinutes     int        `json:"slotDurationMinutes"`
	MinBookingNoticeMinutes int        `json:"minBookingNoticeMinutes"`
	MaxConcurrentBookings   int        `json:"maxConcurrentBookings"`
	AdvanceBookingDays      int        `json:"advanceBookingDays"`
	PageSize                int        `json:"pageSize"`
	MaxScanDays             int        `json:"maxScanDays"`
	CreatedAt               *time.Time `json:"createdAt,omitempty"`
	UpdatedAt               *time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainPolicy конвертирует сохранённую политику в DTO
func FromDomainPolicy(p *domain.CompanySchedulingPolicy) *PolicyResponse {
	if p == nil {
		return nil
	}

	source := SourceCompany
	if p.IsCalendarSpecific() {
		source = SourceCalendar
	}

	createdAt := p.CreatedAt
	updatedAt := p.UpdatedAt

	return &PolicyResponse{
		ID:                      p.ID,
		CompanyID:               p.CompanyID,
		CalendarID:              p.CalendarID,
		Source:                  source,
		SlotDurationMinutes:     p.SlotDurationMinutes,
		MinBookingNoticeMinutes: p.MinBookingNoticeMinutes,
		MaxConcurrentBookings:   p.MaxConcurrentBookings,
		AdvanceBookingDays:      p.AdvanceBookingDays,
		PageSize:                p.PageSize,
		MaxScanDays:             p.MaxScanDays,
		CreatedAt:               &createdAt,
		UpdatedAt:               &updatedAt,
	}
}

// FromDefaultPolicy строит DTO из дефолтов сервиса, когда строки в БД нет
func FromDefaultPolicy(companyID int64, p domain.SchedulingPolicy) *PolicyResponse {
	return &PolicyResponse{
		CompanyID:               companyID,
		Source:                  SourceDefault,
		SlotDurationMinutes:     p.SlotDurationMinutes,
		MinBookingNoticeMinutes: p.MinBookingNoticeMinutes,
		MaxConcurrentBookings:   p.MaxConcurrentBookings,
		AdvanceBookingDays:      p.AdvanceBookingDays,
		PageSize:                p.PageSize,
		MaxScanDays:             p.MaxScanDays,
	}
}

// ToDomainPolicy конвертирует UpsertPolicyRequest в domain модель
func (r *UpsertPolicyRequest) ToDomainPolicy() *domain.CompanySchedulingPolicy {
	return &domain.CompanySchedulingPolicy{
		CompanyID:               r.CompanyID,
		CalendarID:              r.CalendarID,
		SlotDurationMinutes:     r.SlotDurationMinutes,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
		MaxConcurrentBookings:   r.MaxConcurrentBookings,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		PageSize:                r.PageSize,
		MaxScanDays:             r.MaxScanDays,
	}
}
