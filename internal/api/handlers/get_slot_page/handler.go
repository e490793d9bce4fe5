package get_slot_page

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getSlotPage "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_slot_page"
)

const (
	msgInvalidCompanyID    = "некорректный ID компании"
	msgMissingDate         = "дата обязательна"
	msgInvalidPage         = "некорректное значение page"
	msgCompanyNotFound     = "компания не найдена"
	msgCompanyMisconfig    = "календарь компании не настроен"
	msgCalendarUnavailable = "календарь временно недоступен, попробуйте позже"
	msgInvalidParams       = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetSlotPageUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotPageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/slots
// Query params: date (required, YYYY-MM-DD), page (optional, default 0)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем companyId из URL
	companyIDStr := vars["companyId"]
	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/slots - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /companies/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// page опционален, по умолчанию первая страница
	page := 0
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil {
			h.logger.Warn("GET /companies/{id}/slots - Invalid page: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPage)
			return
		}
	}

	// userID опционален: ручка публичная, ID нужен только для логов
	userID, _ := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getSlotPage.Request{
		UserID:    userID,
		CompanyID: companyID,
		Date:      dateStr,
		Page:      page,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlotPage.ErrInvalidInput):
			h.logger.Warn("GET /companies/{id}/slots - Invalid params: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getSlotPage.ErrCompanyNotFound):
			h.logger.Warn("GET /companies/{id}/slots - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, getSlotPage.ErrCompanyMisconfigured):
			h.logger.Error("GET /companies/{id}/slots - Company misconfigured: company_id=%d, error=%v", companyID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCompanyMisconfig)

		case errors.Is(err, getSlotPage.ErrCalendarUnavailable):
			h.logger.Error("GET /companies/{id}/slots - Calendar unavailable: company_id=%d, error=%v", companyID, err)
			handlers.RespondServiceUnavailable(w, msgCalendarUnavailable)

		default:
			h.logger.Error("GET /companies/{id}/slots - Failed to get slots: company_id=%d, date=%s, error=%v",
				companyID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{id}/slots - Slots retrieved successfully: company_id=%d, date=%s, page=%d, slots_count=%d",
		companyID, dateStr, page, len(result.Page.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
