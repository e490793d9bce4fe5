package tenantservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с TenantService (реестр компаний платформы)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента TenantService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCompany получает компанию по ID: имя, таймзона, ID календаря,
// менеджеры и недельное расписание работы
func (c *Client) GetCompany(ctx context.Context, companyID int64) (*Company, error) {
	url := fmt.Sprintf("%s/internal/companies/%d", c.baseURL, companyID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сетевые ошибки и timeouts - сервис недоступен, не "компания не найдена"
		c.log.Error("GetCompany: request to TenantService failed: company_id=%d, error=%v", companyID, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid company ID format", ErrInvalidResponse)
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrCompanyNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("GetCompany: TenantService returned %d: company_id=%d, body=%s",
			resp.StatusCode, companyID, string(body))
		return nil, fmt.Errorf("%w: status code %d", ErrUnavailable, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var company Company
	if err := json.NewDecoder(resp.Body).Decode(&company); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &company, nil
}

// GetCompanyWithCalendar получает компанию и проверяет, что у неё настроен
// внешний календарь. Движку доступности нечего считать без календаря,
// поэтому отсутствие ID календаря - ошибка конфигурации, а не пустой результат.
func (c *Client) GetCompanyWithCalendar(ctx context.Context, companyID int64) (*Company, error) {
	company, err := c.GetCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			c.log.Warn("GetCompanyWithCalendar: company id=%d not found", companyID)
		}
		return nil, err
	}

	if company.CalendarID == "" {
		c.log.Warn("GetCompanyWithCalendar: company id=%d has no calendar configured", companyID)
		return nil, fmt.Errorf("%w: company_id=%d", ErrCompanyWithoutCalendar, companyID)
	}

	return company, nil
}
