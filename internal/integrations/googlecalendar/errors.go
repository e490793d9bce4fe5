package googlecalendar

import "errors"

var (
	// ErrConfiguration возвращается при проблемах конфигурации:
	// пустой или несуществующий ID календаря, отозванные или невалидные
	// credentials. Не ретраится - требует вмешательства администратора.
	ErrConfiguration = errors.New("googlecalendar client: invalid configuration")

	// ErrUnavailable возвращается при временных сбоях Google Calendar API:
	// timeout, rate-limit (429), 5xx. Вызывающий слой может повторить запрос.
	// Никогда не подменяется пустым списком занятости - это привело бы
	// к показу уже занятых слотов.
	ErrUnavailable = errors.New("googlecalendar client: calendar unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")
)
