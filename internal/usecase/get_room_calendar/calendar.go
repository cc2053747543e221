package get_room_calendar

import "github.com/m04kA/SMC-HotelBooking/internal/domain"

// buildCalendar раскладывает окно [from, to) на занятые и свободные интервалы.
// bookings должны быть отсортированы по дате заезда.
func buildCalendar(bookings []*domain.Booking, from, to domain.Date) (free, booked []Range) {
	free = make([]Range, 0)
	booked = make([]Range, 0)

	cursor := from
	for _, b := range bookings {
		start, end := b.CheckIn, b.CheckOut
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		if !start.Before(end) {
			continue
		}

		booked = append(booked, newRange(start, end))

		if cursor.Before(start) {
			free = append(free, newRange(cursor, start))
		}
		if cursor.Before(end) {
			cursor = end
		}
	}

	if cursor.Before(to) {
		free = append(free, newRange(cursor, to))
	}

	return free, booked
}

func newRange(checkIn, checkOut domain.Date) Range {
	return Range{CheckIn: checkIn, CheckOut: checkOut, Nights: checkIn.DaysUntil(checkOut)}
}
