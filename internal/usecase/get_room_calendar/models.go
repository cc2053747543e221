package get_room_calendar

import "github.com/m04kA/SMC-HotelBooking/internal/domain"

const (
	// DefaultWindowDays длина окна, если конец не указан
	DefaultWindowDays = 30
	// MaxWindowDays максимальная длина окна календаря
	MaxWindowDays = 180
)

// Request модель запроса календаря занятости комнаты
type Request struct {
	RoomID int64
	From   domain.Date // пустая дата означает сегодня
	To     domain.Date // пустая дата означает From + DefaultWindowDays
}

// Response календарь комнаты на окне [From, To)
type Response struct {
	RoomID int64
	From   domain.Date
	To     domain.Date
	Free   []Range
	Booked []Range
}

// Range полуоткрытый интервал ночей [CheckIn, CheckOut)
type Range struct {
	CheckIn  domain.Date
	CheckOut domain.Date
	Nights   int
}
