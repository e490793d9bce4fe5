package domain

import "time"

// BusyInterval represents a time range already occupied by an existing
// booking in the external calendar. Read-only input for slot filtering.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps returns true if the interval truly overlaps the slot.
// Строгие неравенства: интервалы, граничащие концами
// (бронь 11:00-11:30 и слот 11:30-12:00), пересечением не считаются.
func (b BusyInterval) Overlaps(slot TimeSlot) bool {
	return b.Start.Before(slot.End) && b.End.After(slot.Start)
}
