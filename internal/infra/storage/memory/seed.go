package memory

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// SeedDemo наполняет пустое хранилище каталогом комнат и пользователями для локального запуска
func (s *Store) SeedDemo() {
	rooms := []domain.Room{
		{ID: 1, Name: "Standard Single", PricePerNight: decimal.NewFromInt(80), Capacity: 1, IsAvailable: true},
		{ID: 2, Name: "Standard Double", PricePerNight: decimal.NewFromInt(100), Capacity: 2, IsAvailable: true},
		{ID: 3, Name: "Deluxe Suite", PricePerNight: decimal.RequireFromString("249.99"), Capacity: 4, IsAvailable: true},
		{ID: 4, Name: "Family Room (renovation)", PricePerNight: decimal.NewFromInt(150), Capacity: 5, IsAvailable: false},
	}
	for _, room := range rooms {
		s.AddRoom(room)
	}

	s.AddUser(domain.UserSummary{ID: 1, Name: "Admin", Email: "admin@hotel.local", Role: domain.RoleAdmin})
	s.AddUser(domain.UserSummary{ID: 2, Name: "Guest", Email: "guest@hotel.local", Role: domain.RoleClient})
}
