package googlecalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// maxEventsPerPage размер страницы при постраничном чтении событий
const maxEventsPerPage = 250

// eventDateLayout формат даты целодневных событий Google Calendar
const eventDateLayout = "2006-01-02"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для чтения занятости из Google Calendar.
// Только чтение: создание бронирований принадлежит другому сервису.
type Client struct {
	service *calendar.Service
	log     Logger
}

// NewClient создает клиент поверх готового calendar.Service
func NewClient(service *calendar.Service, log Logger) *Client {
	return &Client{
		service: service,
		log:     log,
	}
}

// NewService строит calendar.Service с источником токенов и таймаутом
func NewService(ctx context.Context, tokens oauth2.TokenSource, timeout time.Duration) (*calendar.Service, error) {
	httpClient := oauth2.NewClient(ctx, tokens)
	httpClient.Timeout = timeout

	service, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrConfiguration, err)
	}

	return service, nil
}

// ListBusy возвращает занятые интервалы календаря, пересекающиеся с [from, to].
// События читаются с развёрнутыми повторениями (singleEvents) постранично.
// Целодневные события расширяются до полных суток в таймзоне from;
// отменённые и "прозрачные" (не блокирующие время) события пропускаются.
func (c *Client) ListBusy(ctx context.Context, calendarID string, from, to time.Time) ([]domain.BusyInterval, error) {
	if calendarID == "" {
		return nil, fmt.Errorf("%w: empty calendar id", ErrConfiguration)
	}

	loc := from.Location()
	busy := make([]domain.BusyInterval, 0)
	pageToken := ""

	for {
		call := c.service.Events.List(calendarID).
			TimeMin(from.Format(time.RFC3339)).
			TimeMax(to.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			MaxResults(maxEventsPerPage).
			Context(ctx)

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		events, err := call.Do()
		if err != nil {
			return nil, c.wrapError(calendarID, err)
		}

		for _, item := range events.Items {
			if item.Status == "cancelled" || item.Transparency == "transparent" {
				continue
			}

			interval, ok := eventInterval(item, loc)
			if !ok {
				c.log.Warn("ListBusy: skipping event with unparsable time: calendar=%s, event=%s",
					calendarID, item.Id)
				continue
			}

			busy = append(busy, interval)
		}

		pageToken = events.NextPageToken
		if pageToken == "" {
			break
		}
	}

	c.log.Info("ListBusy: calendar=%s, range=[%s, %s], busy_intervals=%d",
		calendarID, from.Format(time.RFC3339), to.Format(time.RFC3339), len(busy))

	return busy, nil
}

// eventInterval конвертирует событие календаря в занятый интервал.
// События с dateTime берутся как есть и приводятся к таймзоне запроса;
// целодневные события (date без времени) занимают полные сутки.
func eventInterval(event *calendar.Event, loc *time.Location) (domain.BusyInterval, bool) {
	if event.Start == nil || event.End == nil {
		return domain.BusyInterval{}, false
	}

	if event.Start.DateTime != "" && event.End.DateTime != "" {
		start, err := time.Parse(time.RFC3339, event.Start.DateTime)
		if err != nil {
			return domain.BusyInterval{}, false
		}
		end, err := time.Parse(time.RFC3339, event.End.DateTime)
		if err != nil {
			return domain.BusyInterval{}, false
		}
		return domain.BusyInterval{Start: start.In(loc), End: end.In(loc)}, true
	}

	if event.Start.Date != "" && event.End.Date != "" {
		start, err := time.ParseInLocation(eventDateLayout, event.Start.Date, loc)
		if err != nil {
			return domain.BusyInterval{}, false
		}
		// End.Date у целодневных событий эксклюзивный
		end, err := time.ParseInLocation(eventDateLayout, event.End.Date, loc)
		if err != nil {
			return domain.BusyInterval{}, false
		}
		return domain.BusyInterval{Start: start, End: end}, true
	}

	return domain.BusyInterval{}, false
}

// wrapError классифицирует ошибку Google API:
// проблемы конфигурации против временной недоступности
func (c *Client) wrapError(calendarID string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			c.log.Error("ListBusy: credentials rejected: calendar=%s, code=%d", calendarID, apiErr.Code)
			return fmt.Errorf("%w: credentials rejected (code %d)", ErrConfiguration, apiErr.Code)
		case apiErr.Code == http.StatusNotFound:
			c.log.Error("ListBusy: calendar not found: calendar=%s", calendarID)
			return fmt.Errorf("%w: calendar %q not found", ErrConfiguration, calendarID)
		case apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError:
			c.log.Error("ListBusy: calendar API unavailable: calendar=%s, code=%d", calendarID, apiErr.Code)
			return fmt.Errorf("%w: status code %d", ErrUnavailable, apiErr.Code)
		default:
			return fmt.Errorf("%w: unexpected status code %d", ErrInternal, apiErr.Code)
		}
	}

	// Сетевые ошибки и истёкшие контексты - временная недоступность
	c.log.Error("ListBusy: request failed: calendar=%s, error=%v", calendarID, err)
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
