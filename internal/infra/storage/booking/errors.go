package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено (или не принадлежит пользователю)
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrOverlap возвращается, когда комната уже занята на пересекающиеся даты
	ErrOverlap = errors.New("booking.repository: room already booked for overlapping dates")

	// ErrStatusChanged возвращается, когда статус бронирования изменился между чтением и записью
	ErrStatusChanged = errors.New("booking.repository: booking status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
