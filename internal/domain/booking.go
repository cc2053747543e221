package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// transitions is the allowed status graph
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// ParseBookingStatus validates a raw status value
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	return status, status.IsValid()
}

// IsValid reports whether the status is one of the known values
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal returns true for cancelled and completed
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// IsActive returns true if a booking in this status occupies its room
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo checks the status graph
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking represents a room reservation
type Booking struct {
	ID         int64
	UserID     int64
	RoomID     int64
	CheckIn    Date
	CheckOut   Date
	TotalPrice decimal.Decimal
	Status     BookingStatus
	PaymentID  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights returns the length of stay
func (b *Booking) Nights() int {
	return b.CheckIn.DaysUntil(b.CheckOut)
}

// IsActive returns true if the booking blocks the room for its dates
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// Overlaps checks half-open interval intersection with [checkIn, checkOut)
func (b *Booking) Overlaps(checkIn, checkOut Date) bool {
	return b.CheckIn.Before(checkOut) && checkIn.Before(b.CheckOut)
}

// BookingDetails is a booking joined with its room and, for admin views, its user
type BookingDetails struct {
	Booking
	Room   Room
	User   *UserSummary
	Guests int
}

// BookingStats aggregates bookings by status
type BookingStats struct {
	Total     int
	Pending   int
	Confirmed int
	Cancelled int
	Completed int
	Revenue   decimal.Decimal
}
