package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID   int64       // ID пользователя из токена
	RoomID   int64       // ID комнаты
	CheckIn  domain.Date // Дата заезда
	CheckOut domain.Date // Дата выезда (не входит в проживание)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	UserID        int64
	RoomID        int64
	RoomName      string
	CheckIn       domain.Date
	CheckOut      domain.Date
	Nights        int
	PricePerNight decimal.Decimal
	TotalPrice    decimal.Decimal
	Status        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
