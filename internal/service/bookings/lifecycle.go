package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings/models"
)

// Cancel отменяет бронирование
// Клиент может отменить только своё бронирование, администратор - любое.
// Отмена возможна строго до даты заезда.
func (s *Service) Cancel(ctx context.Context, identity domain.Identity, bookingID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, identity.UserID)

	var ownerID *int64
	if !identity.IsAdmin() {
		ownerID = &identity.UserID
	}

	// Получаем бронирование (с учётом владельца)
	booking, err := s.bookingRepo.GetByID(ctx, bookingID, ownerID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found for user=%d", bookingID, identity.UserID)
			return ErrNotFoundOrDenied
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrStorage, err)
	}

	if err := terminalStatusError(booking.Status); err != nil {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return err
	}

	today := domain.DateOf(s.timeProvider.Now())
	if !booking.CheckIn.After(today) {
		s.logger.Warn("Cancel: booking id=%d check-in %s is not after today %s", bookingID, booking.CheckIn, today)
		return ErrTooLateToCancel
	}

	// UPDATE выполняется только для нетерминального статуса
	if err := s.bookingRepo.Cancel(ctx, bookingID, ownerID); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Cancel: booking id=%d disappeared during cancellation", bookingID)
			return ErrNotFoundOrDenied
		case errors.Is(err, bookingRepo.ErrStatusChanged):
			s.logger.Warn("Cancel: booking id=%d status changed concurrently", bookingID)
			return s.reclassifyCancel(ctx, bookingID, ownerID)
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	s.metrics.ObserveBooking("cancel", "cancelled")
	s.publish(ctx, domain.EventBookingCancelled, booking, domain.StatusCancelled, identity.UserID)
	return nil
}

// reclassifyCancel перечитывает бронирование, чтобы вернуть точную причину отказа
func (s *Service) reclassifyCancel(ctx context.Context, bookingID int64, ownerID *int64) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID, ownerID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrNotFoundOrDenied
		}
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrStorage, err)
	}
	if err := terminalStatusError(booking.Status); err != nil {
		return err
	}
	return ErrConcurrentUpdate
}

// UpdateStatus меняет статус бронирования и, опционально, идентификатор платежа. Только для администратора.
func (s *Service) UpdateStatus(ctx context.Context, identity domain.Identity, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, identity.UserID)

	if !identity.IsAdmin() {
		s.logger.Warn("UpdateStatus: access denied for user=%d", identity.UserID)
		return ErrAccessDenied
	}

	newStatus, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID, nil)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrStorage, err)
	}

	if booking.Status == newStatus && !isNewPayment(booking.PaymentID, req.PaymentID) {
		s.logger.Warn("UpdateStatus: booking id=%d already has status=%s", bookingID, newStatus)
		return ErrNoChange
	}

	if booking.Status != newStatus && s.enforceTransitions && !booking.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return ErrInvalidTransition
	}

	if !booking.IsActive() && newStatus.IsActive() {
		err = s.reactivate(ctx, booking, newStatus, req.PaymentID)
	} else {
		err = s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, newStatus, req.PaymentID)
	}
	if err != nil {
		return s.mapUpdateError(bookingID, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d from %s to %s", bookingID, booking.Status, newStatus)
	s.metrics.ObserveBooking("set_status", "status_changed")
	s.publish(ctx, domain.EventBookingStatusChanged, booking, newStatus, identity.UserID)
	return nil
}

// reactivate возвращает отменённое или завершённое бронирование в активный статус
// Доступность комнаты перепроверяется под блокировкой, исключая само бронирование
func (s *Service) reactivate(ctx context.Context, booking *domain.Booking, to domain.BookingStatus, paymentID *string) error {
	unlock, err := s.locker.Lock(ctx, booking.RoomID)
	if err != nil {
		return fmt.Errorf("%w: lock room=%d: %w", ErrStorage, booking.RoomID, err)
	}
	defer unlock()

	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		available, err := s.checker.Check(txCtx, booking.RoomID, booking.CheckIn, booking.CheckOut, &booking.ID)
		if err != nil {
			return fmt.Errorf("%w: availability check: %w", ErrStorage, err)
		}
		if !available {
			return ErrRoomUnavailable
		}
		return s.bookingRepo.UpdateStatus(txCtx, booking.ID, booking.Status, to, paymentID)
	})
}

func (s *Service) mapUpdateError(bookingID int64, err error) error {
	switch {
	case errors.Is(err, ErrRoomUnavailable), errors.Is(err, bookingRepo.ErrOverlap):
		s.logger.Warn("UpdateStatus: room is booked for dates of booking id=%d", bookingID)
		return ErrRoomUnavailable
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
		return ErrBookingNotFound
	case errors.Is(err, bookingRepo.ErrStatusChanged):
		s.logger.Warn("UpdateStatus: booking id=%d status changed concurrently", bookingID)
		return ErrConcurrentUpdate
	case errors.Is(err, ErrStorage):
		s.logger.Error("UpdateStatus: storage error for booking id=%d: %v", bookingID, err)
		return err
	}
	s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
	return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrStorage, err)
}

// Purge физически удаляет бронирование в обход правил жизненного цикла. Только для администратора.
func (s *Service) Purge(ctx context.Context, identity domain.Identity, bookingID int64) error {
	s.logger.Info("Purge: deleting booking id=%d by user=%d", bookingID, identity.UserID)

	if !identity.IsAdmin() {
		s.logger.Warn("Purge: access denied for user=%d", identity.UserID)
		return ErrAccessDenied
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID, nil)
	if err == nil {
		err = s.bookingRepo.Delete(ctx, bookingID)
	}
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Purge: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Purge: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Purge - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("Purge: successfully deleted booking id=%d", bookingID)
	s.metrics.ObserveBooking("purge", "purged")
	s.publish(ctx, domain.EventBookingPurged, booking, booking.Status, identity.UserID)
	return nil
}

// publish отправляет событие; ошибка брокера не влияет на результат
func (s *Service) publish(ctx context.Context, eventType domain.EventType, b *domain.Booking, status domain.BookingStatus, actorID int64) {
	event := domain.BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		UserID:     b.UserID,
		RoomID:     b.RoomID,
		Status:     status,
		PrevStatus: b.Status,
		ActorID:    actorID,
		OccurredAt: s.timeProvider.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish: failed to publish %s for booking id=%d: %v", eventType, b.ID, err)
	}
}

func terminalStatusError(status domain.BookingStatus) error {
	switch status {
	case domain.StatusCancelled:
		return ErrAlreadyCancelled
	case domain.StatusCompleted:
		return ErrAlreadyCompleted
	}
	return nil
}

// isNewPayment true, если передан идентификатор платежа, отличный от сохранённого
func isNewPayment(current, next *string) bool {
	if next == nil {
		return false
	}
	return current == nil || *current != *next
}
