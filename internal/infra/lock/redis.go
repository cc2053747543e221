package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix   = "hotel:room-lock:"
	redisRetryPeriod = 25 * time.Millisecond
)

// снимаем блокировку, только если она всё ещё наша
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Redis распределённая блокировка комнат (SET NX PX) для нескольких экземпляров сервиса
// ttl ограничивает время жизни блокировки, если процесс упал, не сняв её
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

func NewRedis(client *redis.Client, ttl time.Duration, logger Logger) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Lock повторяет SET NX, пока блокировка не освободится или не истечёт ctx
func (r *Redis) Lock(ctx context.Context, roomID int64) (Unlock, error) {
	key := fmt.Sprintf("%s%d", redisKeyPrefix, roomID)
	token := uuid.NewString()

	ticker := time.NewTicker(redisRetryPeriod)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("%w: room=%d: %w", ErrNotAcquired, roomID, ctxErr)
			}
			return nil, fmt.Errorf("%w: Lock - room=%d: %v", ErrBackend, roomID, err)
		}
		if ok {
			return r.unlockFunc(key, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: room=%d: %w", ErrNotAcquired, roomID, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (r *Redis) unlockFunc(key, token string) Unlock {
	return func() {
		// контекст запроса мог уже истечь, снимаем блокировку независимо от него
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		err := unlockScript.Run(ctx, r.client, []string{key}, token).Err()
		if err != nil && !errors.Is(err, redis.Nil) {
			r.logger.Warn("Unlock: failed to release %s, expires in %s: %v", key, r.ttl, err)
		}
	}
}
