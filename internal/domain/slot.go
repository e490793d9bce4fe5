package domain

import (
	"fmt"
	"time"
)

// TimeSlot represents a single bookable time window within working hours.
// Start and End are always in the company timezone; mixing locations
// within one computation is a defect.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// Duration returns the slot length
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Label returns the user-facing slot label, e.g. "09:00 - 09:30"
func (s TimeSlot) Label() string {
	return s.Start.Format(TimeFormat) + " - " + s.End.Format(TimeFormat)
}

// AvailableDay represents a calendar day with at least one free slot.
// ID является позиционным токеном: он валиден только против того списка,
// из которого получен.
type AvailableDay struct {
	ID       string
	Label    string
	Date     time.Time
	Schedule DaySchedule
}

// NewAvailableDay создает день с позиционным id по индексу в выдаче
func NewAvailableDay(index int, date time.Time, schedule DaySchedule) AvailableDay {
	return AvailableDay{
		ID:       fmt.Sprintf(DayIDFormat, index),
		Label:    date.Format(DayLabelFormat),
		Date:     date,
		Schedule: schedule,
	}
}

// PagedSlot is a TimeSlot with a positional page-scoped id
type PagedSlot struct {
	ID string
	TimeSlot
}

// SlotPage represents one page of the filtered slot list for a date
type SlotPage struct {
	Slots       []PagedSlot
	TotalSlots  int
	CurrentPage int
	TotalPages  int
	HasMore     bool
}

// NewSlotPage нарезает полный отфильтрованный список слотов на страницу.
// Запрос страницы за пределами диапазона возвращает пустую, но корректно
// заполненную страницу - это валидный ответ, а не ошибка.
func NewSlotPage(slots []TimeSlot, page, pageSize int) SlotPage {
	totalSlots := len(slots)
	totalPages := 0
	if totalSlots > 0 {
		totalPages = (totalSlots + pageSize - 1) / pageSize
	}

	result := SlotPage{
		Slots:       []PagedSlot{},
		TotalSlots:  totalSlots,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasMore:     page < totalPages-1,
	}

	start := page * pageSize
	if start >= totalSlots {
		return result
	}

	end := start + pageSize
	if end > totalSlots {
		end = totalSlots
	}

	result.Slots = make([]PagedSlot, 0, end-start)
	for i := start; i < end; i++ {
		result.Slots = append(result.Slots, PagedSlot{
			// Глобальный индекс в пределах дня, а не индекс внутри страницы:
			// id должен быть уникален для пары (дата, страница)
			ID:       fmt.Sprintf(SlotIDFormat, page, i),
			TimeSlot: slots[i],
		})
	}

	return result
}
