package roomcache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

type mockRooms struct {
	mock.Mock
}

func (m *mockRooms) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*domain.Room)
	return room, args.Error(1)
}

type countingLogger struct {
	warnings int
}

func (l *countingLogger) Warn(string, ...interface{}) { l.warnings++ }

// Redis недоступен: кэш должен прозрачно отдавать данные из репозитория
func TestCache_FallsBackWhenRedisDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	room := &domain.Room{ID: 5, Name: "Suite", PricePerNight: decimal.NewFromInt(200), Capacity: 3, IsAvailable: true}
	rooms := &mockRooms{}
	rooms.On("GetRoom", mock.Anything, int64(5)).Return(room, nil)

	log := &countingLogger{}
	cache := New(rooms, client, time.Minute, log)

	got, err := cache.GetRoom(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, room, got)
	assert.Equal(t, 2, log.warnings)
	rooms.AssertExpectations(t)
}
