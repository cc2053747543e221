package get_room_calendar

import (
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	getRoomCalendar "github.com/m04kA/SMC-HotelBooking/internal/usecase/get_room_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	RoomID int64           `json:"roomId"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Free   []RangeResponse `json:"free"`
	Booked []RangeResponse `json:"booked"`
}

// RangeResponse интервал ночей [checkIn, checkOut)
type RangeResponse struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights"`
}

// parseOptionalDate пустая строка означает значение по умолчанию
func parseOptionalDate(s string) (domain.Date, error) {
	if s == "" {
		return domain.Date{}, nil
	}
	return domain.ParseDate(s)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomCalendar.Response) *CalendarResponse {
	return &CalendarResponse{
		RoomID: resp.RoomID,
		From:   resp.From.String(),
		To:     resp.To.String(),
		Free:   toRanges(resp.Free),
		Booked: toRanges(resp.Booked),
	}
}

func toRanges(ranges []getRoomCalendar.Range) []RangeResponse {
	out := make([]RangeResponse, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, RangeResponse{
			CheckIn:  r.CheckIn.String(),
			CheckOut: r.CheckOut.String(),
			Nights:   r.Nights,
		})
	}
	return out
}
