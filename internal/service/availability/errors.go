package availability

import "errors"

var (
	// ErrStorage хранилище не ответило, доступность неизвестна
	ErrStorage = errors.New("availability: storage error")
)
