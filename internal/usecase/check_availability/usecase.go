package check_availability

import (
	"context"
	"errors"
	"fmt"

	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/internal/service/pricing"
)

// UseCase расчёт доступности и стоимости без создания бронирования
type UseCase struct {
	roomRepo RoomRepository
	checker  AvailabilityChecker
	logger   Logger
}

func NewUseCase(roomRepo RoomRepository, checker AvailabilityChecker, logger Logger) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		checker:  checker,
		logger:   logger,
	}
}

// Execute при сбое хранилища комната считается недоступной
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%d, checkIn=%s, checkOut=%s", req.RoomID, req.CheckIn, req.CheckOut)

	if req.RoomID <= 0 || req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return nil, fmt.Errorf("%w: room_id, check_in and check_out are required", ErrInvalidInput)
	}
	if !req.CheckIn.Before(req.CheckOut) {
		return nil, ErrInvalidDateRange
	}

	room, err := uc.roomRepo.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: CheckAvailability - get room: %v", ErrStorage, err)
	}

	nights := pricing.Nights(req.CheckIn, req.CheckOut)

	if !room.IsAvailable || !uc.checker.IsAvailable(ctx, req.RoomID, req.CheckIn, req.CheckOut) {
		uc.logger.Info("CheckAvailability: room=%d unavailable for %s..%s", req.RoomID, req.CheckIn, req.CheckOut)
		return &Response{Available: false, Nights: nights, PricePerNight: room.PricePerNight}, nil
	}

	return &Response{
		Available:     true,
		TotalPrice:    pricing.Calculate(room.PricePerNight, req.CheckIn, req.CheckOut),
		Nights:        nights,
		PricePerNight: room.PricePerNight,
	}, nil
}
