package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение, отмена, смена статуса, удаление
type Service struct {
	bookingRepo        BookingRepository
	checker            AvailabilityChecker
	locker             RoomLocker
	txManager          TransactionManager
	publisher          EventPublisher
	metrics            Metrics
	timeProvider       TimeProvider
	enforceTransitions bool
	logger             Logger
}

// NewService создает новый экземпляр сервиса бронирований
// enforceTransitions запрещает админские переходы вне графа статусов
func NewService(
	bookingRepo BookingRepository,
	checker AvailabilityChecker,
	locker RoomLocker,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	enforceTransitions bool,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:        bookingRepo,
		checker:            checker,
		locker:             locker,
		txManager:          txManager,
		publisher:          publisher,
		metrics:            metrics,
		timeProvider:       realTimeProvider{},
		enforceTransitions: enforceTransitions,
		logger:             logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование с комнатой
// Владелец видит своё бронирование, администратор - любое и вместе с данными пользователя
func (s *Service) GetByID(ctx context.Context, identity domain.Identity, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, identity.UserID)

	details, err := s.bookingRepo.GetDetails(ctx, id, identity.IsAdmin())
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStorage, err)
	}

	if !identity.CanAccess(details.UserID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", identity.UserID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainDetails(details), nil
}

// GetUserBookings получает бронирования пользователя, новые сначала
// Клиент может запросить только свои бронирования
func (s *Service) GetUserBookings(ctx context.Context, identity domain.Identity, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings of user=%d for user=%d", userID, identity.UserID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if !identity.CanAccess(userID) {
		s.logger.Warn("GetUserBookings: access denied for user=%d to bookings of user=%d", identity.UserID, userID)
		return nil, ErrAccessDenied
	}

	list, err := s.bookingRepo.ListDetailsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(list), userID)
	return models.FromDomainDetailsList(list), nil
}

// GetAll получает все бронирования с комнатами и пользователями. Только для администратора.
func (s *Service) GetAll(ctx context.Context, identity domain.Identity) (*models.BookingListResponse, error) {
	s.logger.Info("GetAll: fetching all bookings for user=%d", identity.UserID)

	if !identity.IsAdmin() {
		s.logger.Warn("GetAll: access denied for user=%d", identity.UserID)
		return nil, ErrAccessDenied
	}

	list, err := s.bookingRepo.ListDetails(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("GetAll: successfully fetched %d bookings", len(list))
	return models.FromDomainDetailsList(list), nil
}

// GetStats получает количество бронирований по статусам и выручку. Только для администратора.
func (s *Service) GetStats(ctx context.Context, identity domain.Identity) (*models.StatsResponse, error) {
	s.logger.Info("GetStats: fetching stats for user=%d", identity.UserID)

	if !identity.IsAdmin() {
		s.logger.Warn("GetStats: access denied for user=%d", identity.UserID)
		return nil, ErrAccessDenied
	}

	stats, err := s.bookingRepo.Stats(ctx)
	if err != nil {
		s.logger.Error("GetStats: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrStorage, err)
	}

	return models.FromDomainStats(stats), nil
}
