package update_company_policy

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/policy/models"
)

// UpdateCompanyPolicyRequest HTTP request model.
// PUT-семантика: передаются все поля целиком
type UpdateCompanyPolicyRequest struct {
	CalendarID              *string `json:"calendarId,omitempty"` // NULL = для всех календарей компании
	SlotDurationMinutes     int     `json:"slotDurationMinutes"`
	MinBookingNoticeMinutes int     `json:"minBookingNoticeMinutes"`
	MaxConcurrentBookings   int     `json:"maxConcurrentBookings"`
	AdvanceBookingDays      int     `json:"advanceBookingDays"`
	PageSize                int     `json:"pageSize"`
	MaxScanDays             int     `json:"maxScanDays"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateCompanyPolicyRequest) ToServiceRequest(companyID, userID int64) *models.UpsertPolicyRequest {
	return &models.UpsertPolicyRequest{
		UserID:                  userID,
		CompanyID:               companyID,
		CalendarID:              r.CalendarID,
		SlotDurationMinutes:     r.SlotDurationMinutes,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
		MaxConcurrentBookings:   r.MaxConcurrentBookings,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		PageSize:                r.PageSize,
		MaxScanDays:             r.MaxScanDays,
	}
}
