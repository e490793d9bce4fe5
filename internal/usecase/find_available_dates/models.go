package find_available_dates

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на поиск ближайших дат со свободными слотами
type Request struct {
	UserID      int64 // ID пользователя (для логирования, не влияет на результат)
	CompanyID   int64 // ID компании
	WantCount   int   // Сколько открытых дат собрать
	MaxScanDays int   // Горизонт сканирования в днях (0 = из политики)
}

// Response модель ответа со списком доступных дат.
// Ids дней позиционные: вызывающий слой обязан сохранить этот объект
// и резолвить выбор пользователя по нему же, а не по повторному запросу.
type Response struct {
	CompanyID int64
	Timezone  string
	Days      []domain.AvailableDay
}
