package find_available_dates

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("company not found")

	// ErrCompanyMisconfigured возвращается при проблемах конфигурации компании:
	// не настроен календарь, невалидная таймзона, отозванные credentials.
	// Не ретраится - требует вмешательства администратора.
	ErrCompanyMisconfigured = errors.New("company calendar is misconfigured")

	// ErrCalendarUnavailable возвращается при временной недоступности
	// внешнего календаря. Отличается от пустого результата: вызывающий слой
	// показывает "попробуйте позже", а не "свободных дат нет".
	ErrCalendarUnavailable = errors.New("external calendar is unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
