package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
)

// Store хранилище в памяти процесса для локального запуска и тестов
// Реализует те же контракты и ошибки, что и репозитории PostgreSQL.
// Проверка пересечений и вставка выполняются под одним мьютексом.
type Store struct {
	mu       sync.RWMutex
	bookings map[int64]*domain.Booking
	rooms    map[int64]domain.Room
	users    map[int64]domain.UserSummary
	nextID   int64
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		bookings: make(map[int64]*domain.Booking),
		rooms:    make(map[int64]domain.Room),
		users:    make(map[int64]domain.UserSummary),
		now:      time.Now,
	}
}

// WithClock подменяет источник времени для created_at/updated_at
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// AddRoom добавляет комнату в каталог
func (s *Store) AddRoom(room domain.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room
}

// AddUser добавляет пользователя
func (s *Store) AddUser(user domain.UserSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

// AddBooking кладёт бронирование как есть, без проверок. Для фикстур.
func (s *Store) AddBooking(b domain.Booking) *domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	b.ID = s.nextID
	if b.CreatedAt.IsZero() {
		b.CreatedAt = s.now()
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}
	stored := b
	s.bookings[b.ID] = &stored
	return copyBooking(&stored)
}

// GetRoom получает комнату по ID
func (s *Store) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	if err := ctxErr(ctx, "GetRoom"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return &room, nil
}

func (s *Store) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := ctxErr(ctx, "Create"); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if booking.Status.IsActive() && s.countOverlapping(booking.RoomID, booking.CheckIn, booking.CheckOut, nil) > 0 {
		return nil, bookingRepo.ErrOverlap
	}

	s.nextID++
	now := s.now()
	booking.ID = s.nextID
	booking.CreatedAt = now
	booking.UpdatedAt = now

	s.bookings[booking.ID] = copyBooking(booking)
	return booking, nil
}

func (s *Store) GetByID(ctx context.Context, id int64, ownerID *int64) (*domain.Booking, error) {
	if err := ctxErr(ctx, "GetByID"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok || (ownerID != nil && b.UserID != *ownerID) {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return copyBooking(b), nil
}

func (s *Store) CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut domain.Date, excludeID *int64) (int, error) {
	if err := ctxErr(ctx, "CountOverlapping"); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.countOverlapping(roomID, checkIn, checkOut, excludeID), nil
}

// ListActiveByRoom активные бронирования комнаты, пересекающие [from, to), по дате заезда
func (s *Store) ListActiveByRoom(ctx context.Context, roomID int64, from, to domain.Date) ([]*domain.Booking, error) {
	if err := ctxErr(ctx, "ListActiveByRoom"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.RoomID == roomID && b.IsActive() && b.Overlaps(from, to) {
			result = append(result, copyBooking(b))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CheckIn.Equal(result[j].CheckIn) {
			return result[i].ID < result[j].ID
		}
		return result[i].CheckIn.Before(result[j].CheckIn)
	})
	return result, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus, paymentID *string) error {
	if err := ctxErr(ctx, "UpdateStatus"); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Status != from {
		return bookingRepo.ErrStatusChanged
	}
	if to.IsActive() && !from.IsActive() && s.countOverlapping(b.RoomID, b.CheckIn, b.CheckOut, &b.ID) > 0 {
		return bookingRepo.ErrOverlap
	}

	b.Status = to
	if paymentID != nil {
		ref := *paymentID
		b.PaymentID = &ref
	}
	b.UpdatedAt = s.now()
	return nil
}

func (s *Store) Cancel(ctx context.Context, id int64, ownerID *int64) error {
	if err := ctxErr(ctx, "Cancel"); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok || (ownerID != nil && b.UserID != *ownerID) {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Status.IsTerminal() {
		return bookingRepo.ErrStatusChanged
	}

	b.Status = domain.StatusCancelled
	b.UpdatedAt = s.now()
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := ctxErr(ctx, "Delete"); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(s.bookings, id)
	return nil
}

func (s *Store) GetDetails(ctx context.Context, id int64, withUser bool) (*domain.BookingDetails, error) {
	if err := ctxErr(ctx, "GetDetails"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	details, ok := s.details(b, withUser)
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return details, nil
}

func (s *Store) ListDetailsByUser(ctx context.Context, userID int64) ([]*domain.BookingDetails, error) {
	if err := ctxErr(ctx, "ListDetailsByUser"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.list(func(b *domain.Booking) bool { return b.UserID == userID }, false), nil
}

func (s *Store) ListDetails(ctx context.Context) ([]*domain.BookingDetails, error) {
	if err := ctxErr(ctx, "ListDetails"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.list(func(*domain.Booking) bool { return true }, true), nil
}

func (s *Store) Stats(ctx context.Context) (*domain.BookingStats, error) {
	if err := ctxErr(ctx, "Stats"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &domain.BookingStats{Revenue: decimal.Zero}
	for _, b := range s.bookings {
		stats.Total++
		switch b.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
			stats.Revenue = stats.Revenue.Add(b.TotalPrice)
		case domain.StatusCancelled:
			stats.Cancelled++
		case domain.StatusCompleted:
			stats.Completed++
			stats.Revenue = stats.Revenue.Add(b.TotalPrice)
		}
	}
	return stats, nil
}

func (s *Store) countOverlapping(roomID int64, checkIn, checkOut domain.Date, excludeID *int64) int {
	count := 0
	for _, b := range s.bookings {
		if b.RoomID != roomID || !b.IsActive() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.Overlaps(checkIn, checkOut) {
			count++
		}
	}
	return count
}

// list повторяет JOIN rooms: бронирования без комнаты в каталоге не попадают в выборку
func (s *Store) list(match func(*domain.Booking) bool, withUser bool) []*domain.BookingDetails {
	result := make([]*domain.BookingDetails, 0)
	for _, b := range s.bookings {
		if !match(b) {
			continue
		}
		if details, ok := s.details(b, withUser); ok {
			result = append(result, details)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result
}

func (s *Store) details(b *domain.Booking, withUser bool) (*domain.BookingDetails, bool) {
	room, ok := s.rooms[b.RoomID]
	if !ok {
		return nil, false
	}

	details := &domain.BookingDetails{
		Booking: *copyBooking(b),
		Room:    room,
		Guests:  room.Capacity,
	}
	if withUser {
		if user, ok := s.users[b.UserID]; ok {
			details.User = &user
		}
	}
	return details, true
}

func copyBooking(b *domain.Booking) *domain.Booking {
	c := *b
	if b.PaymentID != nil {
		ref := *b.PaymentID
		c.PaymentID = &ref
	}
	return &c
}

func ctxErr(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s - %w", bookingRepo.ErrExecQuery, op, err)
	}
	return nil
}
