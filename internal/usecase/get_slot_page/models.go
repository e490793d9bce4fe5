package get_slot_page

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса страницы свободных слотов на дату
type Request struct {
	UserID    int64  // ID пользователя (для логирования, не влияет на результат)
	CompanyID int64  // ID компании
	Date      string // Дата в формате YYYY-MM-DD, трактуется в таймзоне компании
	Page      int    // Номер страницы, начиная с нуля
}

// Response модель ответа со страницей слотов.
// Ids слотов позиционные и валидны только против этого ответа.
// Страница за пределами диапазона - корректный пустой ответ
// с честными totalSlots/totalPages, а не ошибка.
type Response struct {
	CompanyID int64
	Date      string
	Timezone  string
	Page      domain.SlotPage
}
