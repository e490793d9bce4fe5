package get_slot_page

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getSlotPage "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_slot_page"
)

type fakeUseCase struct {
	resp *getSlotPage.Response
	err  error
	req  *getSlotPage.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getSlotPage.Request) (*getSlotPage.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *fakeUseCase) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/companies/{companyId}/slots", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)
	return r
}

func pagedResponse() *getSlotPage.Response {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	start := time.Date(2025, 6, 11, 7, 0, 0, 0, loc)
	slots := []domain.TimeSlot{
		{Start: start, End: start.Add(30 * time.Minute)},
		{Start: start.Add(30 * time.Minute), End: start.Add(60 * time.Minute)},
	}

	return &getSlotPage.Response{
		CompanyID: 1,
		Date:      "2025-06-11",
		Timezone:  "Asia/Kolkata",
		Page:      domain.NewSlotPage(slots, 0, 9),
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: pagedResponse()}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/1/slots?date=2025-06-11&page=0", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotPageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.CompanyID)
	assert.Equal(t, "2025-06-11", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "slot_0_0", resp.Slots[0].ID)
	assert.Equal(t, "07:00 - 07:30", resp.Slots[0].Label)
	assert.Equal(t, "07:00", resp.Slots[0].StartTime)
	assert.False(t, resp.HasMore)
}

func TestHandle_DefaultsPageToZero(t *testing.T) {
	uc := &fakeUseCase{resp: pagedResponse()}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/1/slots?date=2025-06-11", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.req)
	assert.Equal(t, 0, uc.req.Page)
}

func TestHandle_MissingDate(t *testing.T) {
	uc := &fakeUseCase{resp: pagedResponse()}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/1/slots", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.req)
}

func TestHandle_InvalidCompanyID(t *testing.T) {
	uc := &fakeUseCase{resp: pagedResponse()}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/abc/slots?date=2025-06-11", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{"company not found", getSlotPage.ErrCompanyNotFound, http.StatusNotFound},
		{"misconfigured", getSlotPage.ErrCompanyMisconfigured, http.StatusUnprocessableEntity},
		{"calendar unavailable", getSlotPage.ErrCalendarUnavailable, http.StatusServiceUnavailable},
		{"invalid input", getSlotPage.ErrInvalidInput, http.StatusBadRequest},
		{"internal", getSlotPage.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.useCaseErr}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/1/slots?date=2025-06-11", nil)
			rec := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
