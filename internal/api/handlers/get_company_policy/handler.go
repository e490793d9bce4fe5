package get_company_policy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/policy"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/policy/models"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgCompanyNotFound  = "компания не найдена"
	msgRegistryDown     = "реестр компаний временно недоступен, попробуйте позже"
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

// Handle GET /api/v1/companies/{companyId}/policy
// Публичный endpoint - без авторизации.
// Возвращает действующую политику: календарь > компания > дефолты сервиса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/policy - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	result, err := h.service.GetEffective(r.Context(), &models.GetPolicyRequest{CompanyID: companyID})
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrCompanyNotFound):
			h.logger.Warn("GET /companies/{id}/policy - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, policy.ErrInvalidInput):
			h.logger.Warn("GET /companies/{id}/policy - Invalid params: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidCompanyID)

		case errors.Is(err, policy.ErrTenantServiceUnavailable):
			h.logger.Error("GET /companies/{id}/policy - Tenant service unavailable: company_id=%d, error=%v", companyID, err)
			handlers.RespondServiceUnavailable(w, msgRegistryDown)

		default:
			h.logger.Error("GET /companies/{id}/policy - Failed to get policy: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{id}/policy - Policy retrieved successfully: company_id=%d, source=%s",
		companyID, result.Source)
	handlers.RespondJSON(w, http.StatusOK, result)
}
