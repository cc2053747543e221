package get_room_calendar

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("get_room_calendar: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_room_calendar: invalid input data")

	// ErrInvalidDateRange возвращается, когда конец окна не позже начала
	ErrInvalidDateRange = errors.New("get_room_calendar: 'to' must be after 'from'")

	// ErrRangeTooLong возвращается, когда окно превышает MaxWindowDays
	ErrRangeTooLong = errors.New("get_room_calendar: date range is too long")

	// ErrStorage возвращается при сбое хранилища
	ErrStorage = errors.New("get_room_calendar: storage error")
)
