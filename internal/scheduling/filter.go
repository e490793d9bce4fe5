package scheduling

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// FilterSlots возвращает подмножество слотов, в которых ещё есть место.
// Слот остаётся, если количество реально пересекающихся с ним занятых
// интервалов меньше maxConcurrent. При maxConcurrent = 1 это строгая
// логика "одна бронь на слот": слот выживает, только если не пересекается
// ни с одним занятым интервалом.
//
// Порядок входного списка сохраняется. Фильтрация по "уже прошло" сюда
// не входит - это ответственность генератора слотов.
func FilterSlots(slots []domain.TimeSlot, busy []domain.BusyInterval, maxConcurrent int) []domain.TimeSlot {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	available := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if countOverlapping(slot, busy) < maxConcurrent {
			available = append(available, slot)
		}
	}

	return available
}

// countOverlapping подсчитывает занятые интервалы, пересекающиеся со слотом.
// Граничащие интервалы (конец брони совпадает с началом слота или наоборот)
// пересечением не считаются.
func countOverlapping(slot domain.TimeSlot, busy []domain.BusyInterval) int {
	count := 0
	for _, interval := range busy {
		if interval.Overlaps(slot) {
			count++
		}
	}
	return count
}
