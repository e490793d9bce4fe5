package scheduling

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BusyIntervalSource источник занятых интервалов внешнего календаря.
// Должен возвращать все события, пересекающиеся с [from, to], в таймзоне
// запрошенного диапазона, с развёрнутыми повторениями.
type BusyIntervalSource interface {
	ListBusy(ctx context.Context, calendarID string, from, to time.Time) ([]domain.BusyInterval, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Engine единая реализация расчёта доступности: генерация слотов,
// запрос занятости календаря и фильтрация. Не хранит состояния между
// вызовами и безопасен для конкурентного использования.
type Engine struct {
	calendar BusyIntervalSource
	logger   Logger
}

// NewEngine создает движок расчёта доступности
func NewEngine(calendar BusyIntervalSource, logger Logger) *Engine {
	return &Engine{
		calendar: calendar,
		logger:   logger,
	}
}

// AvailableSlots возвращает отфильтрованный список свободных слотов на дату.
//
// Если день закрыт или после генерации не осталось ни одного кандидата,
// возвращает пустой список БЕЗ обращения к календарю. Ошибка календаря
// пробрасывается наверх как есть: подменять занятость пустым списком
// нельзя, это привело бы к двойным бронированиям.
func (e *Engine) AvailableSlots(
	ctx context.Context,
	calendarID string,
	date time.Time,
	day domain.DaySchedule,
	now time.Time,
	policy domain.SchedulingPolicy,
) ([]domain.TimeSlot, error) {
	candidates := GenerateSlots(date, day, now, policy)
	if len(candidates) == 0 {
		return []domain.TimeSlot{}, nil
	}

	dayStart := startOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	busy, err := e.calendar.ListBusy(ctx, calendarID, dayStart, dayEnd)
	if err != nil {
		e.logger.Error("AvailableSlots: failed to list busy intervals: calendar=%s, date=%s, error=%v",
			calendarID, date.Format(domain.DateFormat), err)
		return nil, err
	}

	available := FilterSlots(candidates, busy, policy.MaxConcurrentBookings)

	e.logger.Info("AvailableSlots: calendar=%s, date=%s, candidates=%d, busy=%d, available=%d",
		calendarID, date.Format(domain.DateFormat), len(candidates), len(busy), len(available))

	return available, nil
}

// HasAvailability проверяет, есть ли на дату хотя бы один свободный слот
func (e *Engine) HasAvailability(
	ctx context.Context,
	calendarID string,
	date time.Time,
	day domain.DaySchedule,
	now time.Time,
	policy domain.SchedulingPolicy,
) (bool, error) {
	slots, err := e.AvailableSlots(ctx, calendarID, date, day, now, policy)
	if err != nil {
		return false, err
	}
	return len(slots) > 0, nil
}
