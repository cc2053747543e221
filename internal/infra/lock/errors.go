package lock

import "errors"

var (
	// ErrNotAcquired блокировку комнаты не удалось взять до истечения контекста
	ErrNotAcquired = errors.New("lock: room lock not acquired")

	// ErrBackend ошибка хранилища блокировок (Redis)
	ErrBackend = errors.New("lock: backend error")
)
