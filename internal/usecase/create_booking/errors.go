package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("create_booking: check-out date must be after check-in date")

	// ErrPastCheckIn возвращается, когда дата заезда в прошлом
	ErrPastCheckIn = errors.New("create_booking: check-in date cannot be in the past")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomUnavailable возвращается, когда комната занята на выбранные даты или закрыта для бронирования
	ErrRoomUnavailable = errors.New("create_booking: room is not available for the selected dates")

	// ErrStorage возвращается при сбое хранилища или таймауте, запрос можно повторить
	ErrStorage = errors.New("create_booking: storage error")
)
