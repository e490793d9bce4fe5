package get_available_dates

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	findAvailableDates "github.com/m04kA/SMC-AvailabilityService/internal/usecase/find_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	CompanyID int64          `json:"companyId"`
	Timezone  string         `json:"timezone"`
	Days      []AvailableDay `json:"days"`
}

// AvailableDay модель доступной даты.
// ID позиционный и валиден только в рамках этого ответа
type AvailableDay struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Date  string `json:"date"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findAvailableDates.Response) *AvailableDatesResponse {
	days := make([]AvailableDay, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = AvailableDay{
			ID:    day.ID,
			Label: day.Label,
			Date:  day.Date.Format(domain.DateFormat),
		}
	}

	return &AvailableDatesResponse{
		CompanyID: resp.CompanyID,
		Timezone:  resp.Timezone,
		Days:      days,
	}
}
