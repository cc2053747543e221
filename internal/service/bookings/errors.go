package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotFoundOrDenied возвращается при отмене чужого или несуществующего бронирования
	ErrNotFoundOrDenied = errors.New("booking not found or access denied")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	// ErrAlreadyCompleted возвращается при отмене завершённого бронирования
	ErrAlreadyCompleted = errors.New("cannot cancel completed booking")

	// ErrTooLateToCancel возвращается при отмене в день заезда или позже
	ErrTooLateToCancel = errors.New("cannot cancel booking on or after check-in date")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition возвращается при переходе вне графа статусов
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrNoChange возвращается, когда статус и платёж не меняются
	ErrNoChange = errors.New("booking already has this status")

	// ErrRoomUnavailable возвращается, когда реактивируемое бронирование пересекается с другим
	ErrRoomUnavailable = errors.New("room is not available for the selected dates")

	// ErrConcurrentUpdate возвращается, когда бронирование изменили параллельно
	ErrConcurrentUpdate = errors.New("booking was modified concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStorage возвращается при сбое хранилища или таймауте, запрос можно повторить
	ErrStorage = errors.New("service: storage error")
)
