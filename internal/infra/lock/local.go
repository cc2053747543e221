package lock

import (
	"context"
	"fmt"
	"sync"
)

// Unlock освобождает взятую блокировку
type Unlock func()

type roomEntry struct {
	sem  chan struct{}
	refs int
}

// Local блокировки комнат внутри одного процесса
type Local struct {
	mu    sync.Mutex
	rooms map[int64]*roomEntry
}

func NewLocal() *Local {
	return &Local{rooms: make(map[int64]*roomEntry)}
}

// Lock ждёт блокировку комнаты, пока не истечёт ctx
func (l *Local) Lock(ctx context.Context, roomID int64) (Unlock, error) {
	entry := l.acquireEntry(roomID)

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		l.releaseEntry(roomID)
		return nil, fmt.Errorf("%w: room=%d: %w", ErrNotAcquired, roomID, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.sem
			l.releaseEntry(roomID)
		})
	}, nil
}

func (l *Local) acquireEntry(roomID int64) *roomEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.rooms[roomID]
	if !ok {
		entry = &roomEntry{sem: make(chan struct{}, 1)}
		l.rooms[roomID] = entry
	}
	entry.refs++
	return entry
}

// releaseEntry удаляет запись комнаты, когда её больше никто не ждёт
func (l *Local) releaseEntry(roomID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.rooms[roomID]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs == 0 {
		delete(l.rooms, roomID)
	}
}
