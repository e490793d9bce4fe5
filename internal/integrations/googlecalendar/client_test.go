package googlecalendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	service, err := calendar.NewService(context.Background(),
		option.WithEndpoint(server.URL),
		option.WithoutAuthentication(),
		option.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)

	return NewClient(service, nopLogger{}), server
}

func TestListBusy(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))
		assert.NotEmpty(t, r.URL.Query().Get("timeMin"))
		assert.NotEmpty(t, r.URL.Query().Get("timeMax"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"id": "evt-1",
					"status": "confirmed",
					"start": {"dateTime": "2025-06-11T09:15:00Z"},
					"end": {"dateTime": "2025-06-11T09:45:00Z"}
				},
				{
					"id": "evt-cancelled",
					"status": "cancelled",
					"start": {"dateTime": "2025-06-11T10:00:00Z"},
					"end": {"dateTime": "2025-06-11T10:30:00Z"}
				},
				{
					"id": "evt-transparent",
					"status": "confirmed",
					"transparency": "transparent",
					"start": {"dateTime": "2025-06-11T11:00:00Z"},
					"end": {"dateTime": "2025-06-11T11:30:00Z"}
				}
			]
		}`))
	})

	from := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	busy, err := client.ListBusy(context.Background(), "cal-1", from, to)

	require.NoError(t, err)
	// Отменённые и прозрачные события не попадают в занятость
	require.Len(t, busy, 1)
	assert.Equal(t, time.Date(2025, 6, 11, 9, 15, 0, 0, time.UTC), busy[0].Start)
	assert.Equal(t, time.Date(2025, 6, 11, 9, 45, 0, 0, time.UTC), busy[0].End)
}

func TestListBusy_AllDayEvent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"id": "evt-holiday",
					"status": "confirmed",
					"start": {"date": "2025-06-11"},
					"end": {"date": "2025-06-12"}
				}
			]
		}`))
	})

	from := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	busy, err := client.ListBusy(context.Background(), "cal-1", from, to)

	require.NoError(t, err)
	require.Len(t, busy, 1)
	assert.Equal(t, from, busy[0].Start)
	assert.Equal(t, to, busy[0].End)
}

func TestListBusy_Pagination(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("pageToken") == "" {
			_, _ = w.Write([]byte(`{
				"nextPageToken": "page-2",
				"items": [
					{
						"id": "evt-1",
						"status": "confirmed",
						"start": {"dateTime": "2025-06-11T09:00:00Z"},
						"end": {"dateTime": "2025-06-11T09:30:00Z"}
					}
				]
			}`))
			return
		}
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"id": "evt-2",
					"status": "confirmed",
					"start": {"dateTime": "2025-06-11T12:00:00Z"},
					"end": {"dateTime": "2025-06-11T12:30:00Z"}
				}
			]
		}`))
	})

	from := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	busy, err := client.ListBusy(context.Background(), "cal-1", from, from.AddDate(0, 0, 1))

	require.NoError(t, err)
	assert.Equal(t, 2, requests)
	assert.Len(t, busy, 2)
}

func TestListBusy_EmptyCalendarID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("request must not reach the API")
	})

	from := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	_, err := client.ListBusy(context.Background(), "", from, from.AddDate(0, 0, 1))

	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestListBusy_ErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{name: "calendar not found", statusCode: http.StatusNotFound, wantErr: ErrConfiguration},
		{name: "credentials rejected", statusCode: http.StatusForbidden, wantErr: ErrConfiguration},
		{name: "rate limited", statusCode: http.StatusTooManyRequests, wantErr: ErrUnavailable},
		{name: "server error", statusCode: http.StatusInternalServerError, wantErr: ErrUnavailable},
		{name: "bad gateway", statusCode: http.StatusBadGateway, wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(`{"error": {"code": ` + strconv.Itoa(tt.statusCode) + `, "message": "boom"}}`))
			})

			from := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
			_, err := client.ListBusy(context.Background(), "cal-1", from, from.AddDate(0, 0, 1))

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
