package tenantservice

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("company not found")

	// ErrCompanyWithoutCalendar возвращается, когда у компании не настроен
	// внешний календарь - без него считать доступность невозможно
	ErrCompanyWithoutCalendar = errors.New("company has no calendar configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("tenantservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("tenantservice client: invalid response")

	// ErrUnavailable возвращается, когда TenantService недоступен
	// (timeout, 5xx). Отличается от ErrCompanyNotFound: вызывающий слой
	// должен показать "попробуйте позже", а не "компания не найдена"
	ErrUnavailable = errors.New("tenantservice client: service unavailable")
)
