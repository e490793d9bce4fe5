package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	findAvailableDates "github.com/m04kA/SMC-AvailabilityService/internal/usecase/find_available_dates"
)

const (
	msgInvalidCompanyID    = "некорректный ID компании"
	msgInvalidCount        = "некорректное значение count"
	msgInvalidMaxScanDays  = "некорректное значение maxScanDays"
	msgCompanyNotFound     = "компания не найдена"
	msgCompanyMisconfig    = "календарь компании не настроен"
	msgCalendarUnavailable = "календарь временно недоступен, попробуйте позже"
	msgInvalidParams       = "некорректные параметры запроса"
)

const defaultWantCount = 3

type Handler struct {
	useCase FindAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/available-dates
// Query params: count (optional, default 3), maxScanDays (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем companyId из URL
	companyIDStr := vars["companyId"]
	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/available-dates - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	// count опционален, по умолчанию предлагаем три даты
	wantCount := defaultWantCount
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		wantCount, err = strconv.Atoi(countStr)
		if err != nil {
			h.logger.Warn("GET /companies/{id}/available-dates - Invalid count: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCount)
			return
		}
	}

	// maxScanDays опционален, 0 означает горизонт из политики компании
	maxScanDays := 0
	if scanStr := r.URL.Query().Get("maxScanDays"); scanStr != "" {
		maxScanDays, err = strconv.Atoi(scanStr)
		if err != nil {
			h.logger.Warn("GET /companies/{id}/available-dates - Invalid maxScanDays: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMaxScanDays)
			return
		}
	}

	// userID опционален: ручка публичная, ID нужен только для логов
	userID, _ := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &findAvailableDates.Request{
		UserID:      userID,
		CompanyID:   companyID,
		WantCount:   wantCount,
		MaxScanDays: maxScanDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, findAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /companies/{id}/available-dates - Invalid params: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, findAvailableDates.ErrCompanyNotFound):
			h.logger.Warn("GET /companies/{id}/available-dates - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, findAvailableDates.ErrCompanyMisconfigured):
			h.logger.Error("GET /companies/{id}/available-dates - Company misconfigured: company_id=%d, error=%v", companyID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCompanyMisconfig)

		case errors.Is(err, findAvailableDates.ErrCalendarUnavailable):
			h.logger.Error("GET /companies/{id}/available-dates - Calendar unavailable: company_id=%d, error=%v", companyID, err)
			handlers.RespondServiceUnavailable(w, msgCalendarUnavailable)

		default:
			h.logger.Error("GET /companies/{id}/available-dates - Failed to find dates: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{id}/available-dates - Dates retrieved successfully: company_id=%d, days_count=%d",
		companyID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
