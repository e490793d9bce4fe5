package get_slot_page

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getSlotPage "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_slot_page"
)

// SlotPageResponse HTTP response model.
// Страница за пределами диапазона - корректный пустой ответ
type SlotPageResponse struct {
	CompanyID  int64  `json:"companyId"`
	Date       string `json:"date"`
	Timezone   string `json:"timezone"`
	Slots      []Slot `json:"slots"`
	TotalSlots int    `json:"totalSlots"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	HasMore    bool   `json:"hasMore"`
}

// Slot модель временного слота.
// ID позиционный и валиден только в рамках этого ответа
type Slot struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotPage.Response) *SlotPageResponse {
	slots := make([]Slot, len(resp.Page.Slots))
	for i, slot := range resp.Page.Slots {
		slots[i] = Slot{
			ID:        slot.ID,
			Label:     slot.Label(),
			StartTime: slot.Start.Format(domain.TimeFormat),
			EndTime:   slot.End.Format(domain.TimeFormat),
		}
	}

	return &SlotPageResponse{
		CompanyID:  resp.CompanyID,
		Date:       resp.Date,
		Timezone:   resp.Timezone,
		Slots:      slots,
		TotalSlots: resp.Page.TotalSlots,
		Page:       resp.Page.CurrentPage,
		TotalPages: resp.Page.TotalPages,
		HasMore:    resp.Page.HasMore,
	}
}
