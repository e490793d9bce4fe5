package update_company_policy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/policy"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCompanyNotFound    = "компания не найдена"
	msgForbidden          = "доступ запрещен"
	msgInvalidData        = "некорректные данные политики"
	msgRegistryDown       = "реестр компаний временно недоступен, попробуйте позже"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/companies/{companyId}/policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companyId из URL
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /companies/{id}/policy - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /companies/{id}/policy - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateCompanyPolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /companies/{id}/policy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем или заменяем политику (сервис сам проверит права менеджера)
	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest(companyID, userID))
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrCompanyNotFound):
			h.logger.Warn("PUT /companies/{id}/policy - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, policy.ErrAccessDenied):
			h.logger.Warn("PUT /companies/{id}/policy - Access denied: company_id=%d, user_id=%d", companyID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, policy.ErrInvalidInput):
			h.logger.Warn("PUT /companies/{id}/policy - Invalid data: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, policy.ErrTenantServiceUnavailable):
			h.logger.Error("PUT /companies/{id}/policy - Tenant service unavailable: company_id=%d, error=%v", companyID, err)
			handlers.RespondServiceUnavailable(w, msgRegistryDown)

		default:
			h.logger.Error("PUT /companies/{id}/policy - Failed to upsert policy: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /companies/{id}/policy - Policy upserted successfully: company_id=%d, policy_id=%d",
		companyID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
