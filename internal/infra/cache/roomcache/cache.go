package roomcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

const keyPrefix = "hotel:room:"

// RoomRepository источник данных о комнатах
type RoomRepository interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// cachedRoom формат комнаты в Redis
type cachedRoom struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Capacity      int             `json:"capacity"`
	IsAvailable   bool            `json:"is_available"`
}

// Cache read-through кэш комнат в Redis
// Ошибки Redis не ломают запрос: читаем напрямую из репозитория
type Cache struct {
	next   RoomRepository
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

func New(next RoomRepository, client *redis.Client, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetRoom отдаёт комнату из кэша или из репозитория с записью в кэш
// Отсутствующие комнаты не кэшируются
func (c *Cache) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	key := fmt.Sprintf("%s%d", keyPrefix, id)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedRoom
		if err := json.Unmarshal(data, &cached); err == nil {
			return &domain.Room{
				ID:            cached.ID,
				Name:          cached.Name,
				PricePerNight: cached.PricePerNight,
				Capacity:      cached.Capacity,
				IsAvailable:   cached.IsAvailable,
			}, nil
		}
		c.logger.Warn("GetRoom: corrupted cache entry %s, reloading", key)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("GetRoom: redis get %s failed: %v", key, err)
	}

	room, err := c.next.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cachedRoom{
		ID:            room.ID,
		Name:          room.Name,
		PricePerNight: room.PricePerNight,
		Capacity:      room.Capacity,
		IsAvailable:   room.IsAvailable,
	})
	if err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("GetRoom: redis set %s failed: %v", key, err)
		}
	}

	return room, nil
}
