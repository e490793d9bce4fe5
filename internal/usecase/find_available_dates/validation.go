package find_available_dates

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// maxWantCount верхняя граница запрашиваемых дат: списки в чате длиннее
// десяти строк WhatsApp всё равно не отрисует
const maxWantCount = 10

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.WantCount <= 0 {
		return fmt.Errorf("%w: wantCount must be positive", ErrInvalidInput)
	}

	if req.WantCount > maxWantCount {
		return fmt.Errorf("%w: wantCount must not exceed %d", ErrInvalidInput, maxWantCount)
	}

	if req.MaxScanDays < 0 {
		return fmt.Errorf("%w: maxScanDays must not be negative", ErrInvalidInput)
	}

	if req.MaxScanDays > domain.MaxScanDaysLimit {
		return fmt.Errorf("%w: maxScanDays must not exceed %d", ErrInvalidInput, domain.MaxScanDaysLimit)
	}

	return nil
}
