package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Nights количество ночей между датами заезда и выезда
// Для пустого или обратного диапазона возвращает 0
func Nights(checkIn, checkOut domain.Date) int {
	nights := checkIn.DaysUntil(checkOut)
	if nights < 0 {
		return 0
	}
	return nights
}

// Calculate стоимость проживания: цена за ночь * количество ночей
// Округление до копеек, половина - от нуля. Для пустого диапазона 0.
func Calculate(pricePerNight decimal.Decimal, checkIn, checkOut domain.Date) decimal.Decimal {
	nights := Nights(checkIn, checkOut)
	if nights == 0 {
		return decimal.Zero
	}
	return pricePerNight.Mul(decimal.NewFromInt(int64(nights))).Round(domain.PriceScale)
}
