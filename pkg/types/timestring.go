package types

import (
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM (24-часовой)
const timeLayout = "15:04"

// minutesPerDay количество минут в сутках
const minutesPerDay = 24 * 60

// TimeString время дня в формате "HH:MM" без привязки к дате и таймзоне.
// Используется для рабочих часов и времени начала слотов.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки "HH:MM" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time string %q: expected HH:MM format", s)
	}
	return NewTimeString(t), nil
}

// Minutes возвращает количество минут с начала суток
func (ts TimeString) Minutes() int {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// AddMinutes добавляет минуты к времени.
// Возвращает ошибку, если результат выходит за пределы суток -
// расписания не переходят через полночь.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := ts.Minutes() + minutes
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("time %s + %d minutes is out of day range", ts, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return ts.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return ts.Minutes() > other.Minutes()
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// At привязывает время дня к конкретной дате и таймзоне
func (ts TimeString) At(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), ts.Minutes()/60, ts.Minutes()%60, 0, 0, loc)
}
