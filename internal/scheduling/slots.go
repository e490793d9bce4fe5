package scheduling

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// GenerateSlots генерирует полный упорядоченный список слотов-кандидатов на день.
// Слоты идут с фиксированным шагом policy.SlotDurationMinutes от открытия до закрытия;
// слот, не помещающийся до закрытия целиком, отбрасывается, а не усекается.
//
// Для сегодняшней даты первый слот сдвигается вперёд: начало не раньше
// now + MinBookingNoticeMinutes, округлённое вверх до границы слотовой сетки.
// Это гарантирует, что пользователю никогда не покажут слот, который
// невозможно успеть забронировать.
//
// Возвращает пустой список для закрытых дней, прошедших дат и для случая,
// когда после сдвига по буферу в сегодняшнем дне не осталось слотов.
func GenerateSlots(date time.Time, day domain.DaySchedule, now time.Time, policy domain.SchedulingPolicy) []domain.TimeSlot {
	if !day.HasHours() {
		return []domain.TimeSlot{}
	}

	if isDateInPast(date, now) {
		return []domain.TimeSlot{}
	}

	loc := date.Location()
	open := day.OpenTime.At(date, loc)
	close := day.CloseTime.At(date, loc)
	step := policy.SlotDuration()

	start := open
	if isSameDay(date, now) {
		earliest := ceilToSlotBoundary(now.Add(policy.BookingNotice()), open, step)
		if earliest.After(start) {
			start = earliest
		}
	}

	slots := make([]domain.TimeSlot, 0)
	for cur := start; !cur.Add(step).After(close); cur = cur.Add(step) {
		slots = append(slots, domain.TimeSlot{Start: cur, End: cur.Add(step)})
	}

	return slots
}

// ceilToSlotBoundary округляет t вверх до ближайшей границы слотовой сетки.
// Сетка привязана к времени открытия: границы идут с шагом step от open.
func ceilToSlotBoundary(t, open time.Time, step time.Duration) time.Time {
	if !t.After(open) {
		return open
	}
	offset := t.Sub(open)
	steps := offset / step
	if offset%step != 0 {
		steps++
	}
	return open.Add(steps * step)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// startOfDay возвращает начало суток даты в её таймзоне
func startOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
