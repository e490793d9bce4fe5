package domain

// Default scheduling policy values.
// Used when a company has no policy rows in the database.
const (
	DefaultSlotDurationMinutes     = 30
	DefaultMinBookingNoticeMinutes = 30
	DefaultMaxConcurrentBookings   = 1
	DefaultAdvanceBookingDays      = 0 // 0 = unlimited
	DefaultPageSize                = 9
	DefaultMaxScanDays             = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes  = 5
	MaxSlotDurationMinutes  = 480 // 8 hours
	MinConcurrentBookings   = 1
	MaxConcurrentBookings   = 100
	MinAdvanceBookingDays   = 0
	MaxAdvanceBookingDays   = 365 // 1 year
	MinBookingNoticeMinutes = 0
	MaxBookingNoticeMinutes = 10080 // 1 week
	MinPageSize             = 1
	MaxPageSize             = 50
	MaxScanDaysLimit        = 90
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// DayLabelFormat человекочитаемая подпись дня для списков в чате
	DayLabelFormat = "Monday, 02 Jan"
)

// Positional id formats.
// Ids кодируют только позицию в конкретном ответе: слой диалога обязан
// хранить полученный объект и резолвить выбор пользователя по нему же.
const (
	DayIDFormat  = "calendar_day_%d"
	SlotIDFormat = "slot_%d_%d"
)
