package get_room_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
)

// UseCase use case календаря занятости комнаты
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomCalendar: room=%d, from=%s, to=%s", req.RoomID, req.From, req.To)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно календаря относительно сегодняшней даты
	from, to, err := resolveWindow(req.From, req.To, domain.DateOf(uc.timeProvider.Now()))
	if err != nil {
		uc.logger.Warn("GetRoomCalendar: invalid window: %v", err)
		return nil, err
	}

	// 3. Проверяем существование комнаты
	if _, err := uc.roomRepo.GetRoom(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomCalendar: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomCalendar: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomCalendar - get room: %v", ErrStorage, err)
	}

	// 4. Активные бронирования в окне
	bookings, err := uc.bookingRepo.ListActiveByRoom(ctx, req.RoomID, from, to)
	if err != nil {
		uc.logger.Error("GetRoomCalendar: failed to list bookings for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomCalendar - list bookings: %v", ErrStorage, err)
	}

	// 5. Раскладываем окно на интервалы
	free, booked := buildCalendar(bookings, from, to)

	uc.logger.Info("GetRoomCalendar: room=%d, %d free and %d booked ranges in %s..%s",
		req.RoomID, len(free), len(booked), from, to)

	return &Response{
		RoomID: req.RoomID,
		From:   from,
		To:     to,
		Free:   free,
		Booked: booked,
	}, nil
}
