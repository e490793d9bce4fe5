package tenantservice

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Company модель компании из TenantService
type Company struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Timezone     string       `json:"timezone"`   // IANA, например "Asia/Kolkata"
	CalendarID   string       `json:"calendarId"` // ID календаря Google компании
	ManagerIDs   []int64      `json:"managerIds"`
	WorkingHours WeekSchedule `json:"workingHours"`
}

// IsManager проверяет, что пользователь является менеджером компании
func (c *Company) IsManager(userID int64) bool {
	for _, id := range c.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// WeekSchedule расписание работы компании на неделю
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DaySchedule расписание работы на один день недели
type DaySchedule struct {
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime"`  // "HH:MM", null если закрыто
	CloseTime *string `json:"closeTime"` // "HH:MM", null если закрыто
}

// ErrorResponse модель ошибки от TenantService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует недельное расписание в доменную модель.
// Дни с некорректным временем считаются закрытыми, чтобы битые данные
// реестра не превращались в предложение несуществующих слотов.
func (w WeekSchedule) ToDomain() domain.WeekSchedule {
	return domain.WeekSchedule{
		Monday:    w.Monday.toDomain(),
		Tuesday:   w.Tuesday.toDomain(),
		Wednesday: w.Wednesday.toDomain(),
		Thursday:  w.Thursday.toDomain(),
		Friday:    w.Friday.toDomain(),
		Saturday:  w.Saturday.toDomain(),
		Sunday:    w.Sunday.toDomain(),
	}
}

func (d DaySchedule) toDomain() domain.DaySchedule {
	if !d.IsOpen || d.OpenTime == nil || d.CloseTime == nil {
		return domain.DaySchedule{IsOpen: false}
	}

	open, err := types.NewTimeStringFromString(*d.OpenTime)
	if err != nil {
		return domain.DaySchedule{IsOpen: false}
	}
	close, err := types.NewTimeStringFromString(*d.CloseTime)
	if err != nil {
		return domain.DaySchedule{IsOpen: false}
	}

	return domain.DaySchedule{IsOpen: true, OpenTime: &open, CloseTime: &close}
}
