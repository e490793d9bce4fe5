package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// DaySchedule represents the working hours of a company for one day of week
type DaySchedule struct {
	IsOpen    bool
	OpenTime  *types.TimeString // nil, если день закрыт
	CloseTime *types.TimeString // nil, если день закрыт
}

// HasHours returns true if the day is open and both boundaries are set
func (d DaySchedule) HasHours() bool {
	return d.IsOpen && d.OpenTime != nil && d.CloseTime != nil
}

// WeekSchedule represents the working hours of a company for a full week
type WeekSchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// DayFor returns the schedule for the given weekday.
// Total over all weekday values: unknown input is treated as closed.
func (w WeekSchedule) DayFor(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// HasOpenDays returns true if at least one day of the week has working hours
func (w WeekSchedule) HasOpenDays() bool {
	days := []DaySchedule{w.Monday, w.Tuesday, w.Wednesday, w.Thursday, w.Friday, w.Saturday, w.Sunday}
	for _, d := range days {
		if d.HasHours() {
			return true
		}
	}
	return false
}

// DefaultWeekSchedule возвращает расписание по умолчанию:
// понедельник-пятница 07:00-18:00, суббота 07:00-14:00, воскресенье выходной.
// Применяется, когда TenantService не вернул расписание для компании.
func DefaultWeekSchedule() WeekSchedule {
	weekday := openDay("07:00", "18:00")
	return WeekSchedule{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  openDay("07:00", "14:00"),
		Sunday:    DaySchedule{IsOpen: false},
	}
}

func openDay(open, close string) DaySchedule {
	o := types.TimeString(open)
	c := types.TimeString(close)
	return DaySchedule{IsOpen: true, OpenTime: &o, CloseTime: &c}
}
