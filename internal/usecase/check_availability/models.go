package check_availability

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Request запрос на расчёт предполагаемого проживания
type Request struct {
	RoomID   int64
	CheckIn  domain.Date
	CheckOut domain.Date
}

// Response доступность и стоимость; цена заполняется только для свободной комнаты
type Response struct {
	Available     bool
	TotalPrice    decimal.Decimal
	Nights        int
	PricePerNight decimal.Decimal
}
