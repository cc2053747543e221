package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/internal/service/pricing"
)

const metricsOperation = "create"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	checker      AvailabilityChecker
	locker       RoomLocker
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	checker AvailabilityChecker,
	locker RoomLocker,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		checker:      checker,
		locker:       locker,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются под блокировкой комнаты в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, room=%d, checkIn=%s, checkOut=%s",
		req.UserID, req.RoomID, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.observe(err)
		return nil, err
	}

	// 2. Диапазон дат и дата заезда относительно сегодняшнего дня
	now := uc.timeProvider.Now()
	if err := validateDates(req.CheckIn, req.CheckOut, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		uc.observe(err)
		return nil, err
	}

	// 3. Блокируем комнату на время проверки и вставки
	unlock, err := uc.locker.Lock(ctx, req.RoomID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to lock room=%d: %v", req.RoomID, err)
		err = fmt.Errorf("%w: lock room: %w", ErrStorage, err)
		uc.observe(err)
		return nil, err
	}
	defer unlock()

	var (
		result *domain.Booking
		room   *domain.Room
	)

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Проверяем пересечения с активными бронированиями
		available, err := uc.checker.Check(txCtx, req.RoomID, req.CheckIn, req.CheckOut, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %w", ErrStorage, err)
		}
		if !available {
			uc.logger.Warn("CreateBooking: room=%d is booked for %s..%s", req.RoomID, req.CheckIn, req.CheckOut)
			return ErrRoomUnavailable
		}

		// 4.2. Получаем комнату
		room, err = uc.roomRepo.GetRoom(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: get room: %w", ErrStorage, err)
		}
		if !room.IsAvailable {
			uc.logger.Warn("CreateBooking: room id=%d is closed for booking", req.RoomID)
			return ErrRoomUnavailable
		}

		// 4.3. Считаем стоимость
		total := pricing.Calculate(room.PricePerNight, req.CheckIn, req.CheckOut)
		if !total.IsPositive() {
			uc.logger.Warn("CreateBooking: non-positive total=%s for room id=%d", total, req.RoomID)
			return ErrInvalidDateRange
		}

		// 4.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:     req.UserID,
			RoomID:     req.RoomID,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			TotalPrice: total,
			Status:     domain.StatusPending,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrOverlap) {
				uc.logger.Warn("CreateBooking: overlap rejected by storage for room=%d", req.RoomID)
				return ErrRoomUnavailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: create booking: %w", ErrStorage, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if !isKnown(err) {
			err = fmt.Errorf("%w: transaction: %w", ErrStorage, err)
		}
		uc.observe(err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%s", result.ID, result.TotalPrice)
	uc.observe(nil)
	uc.publish(ctx, result)

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		RoomID:        result.RoomID,
		RoomName:      room.Name,
		CheckIn:       result.CheckIn,
		CheckOut:      result.CheckOut,
		Nights:        pricing.Nights(result.CheckIn, result.CheckOut),
		PricePerNight: room.PricePerNight,
		TotalPrice:    result.TotalPrice,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// publish отправляет событие; ошибка брокера не влияет на результат
func (uc *UseCase) publish(ctx context.Context, b *domain.Booking) {
	event := domain.BookingEvent{
		Type:       domain.EventBookingCreated,
		BookingID:  b.ID,
		UserID:     b.UserID,
		RoomID:     b.RoomID,
		Status:     b.Status,
		ActorID:    b.UserID,
		OccurredAt: uc.timeProvider.Now().UTC(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish %s for booking id=%d: %v", event.Type, b.ID, err)
	}
}

func (uc *UseCase) observe(err error) {
	outcome := "created"
	switch {
	case err == nil:
	case errors.Is(err, ErrRoomUnavailable):
		outcome = "conflict"
	case errors.Is(err, ErrStorage):
		outcome = "error"
	default:
		outcome = "rejected"
	}
	uc.metrics.ObserveBooking(metricsOperation, outcome)
}

func isKnown(err error) bool {
	for _, known := range []error{
		ErrInvalidInput,
		ErrInvalidDateRange,
		ErrPastCheckIn,
		ErrRoomNotFound,
		ErrRoomUnavailable,
		ErrStorage,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
