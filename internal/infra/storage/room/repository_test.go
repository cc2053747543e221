package room

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRoom(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	query := regexp.QuoteMeta("SELECT id, name, price_per_night, capacity, is_available FROM rooms WHERE id = $1")

	mock.ExpectQuery(query).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price_per_night", "capacity", "is_available"}).
			AddRow(int64(3), "Suite", "249.99", int64(4), true))
	mock.ExpectQuery(query).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price_per_night", "capacity", "is_available"}))

	room, err := repo.GetRoom(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Suite", room.Name)
	assert.True(t, decimal.RequireFromString("249.99").Equal(room.PricePerNight))
	assert.True(t, room.IsAvailable)

	_, err = repo.GetRoom(context.Background(), 99)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
