package events

import "errors"

var (
	// ErrConnect не удалось подключиться к брокеру
	ErrConnect = errors.New("events: failed to connect to broker")

	// ErrPublish не удалось опубликовать событие
	ErrPublish = errors.New("events: failed to publish event")
)
