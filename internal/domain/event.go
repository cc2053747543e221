package domain

import "time"

// EventType kind of booking audit event
type EventType string

const (
	EventBookingCreated       EventType = "booking.created"
	EventBookingCancelled     EventType = "booking.cancelled"
	EventBookingStatusChanged EventType = "booking.status_changed"
	EventBookingPurged        EventType = "booking.purged"
)

// BookingEvent is an audit record of a booking change
type BookingEvent struct {
	Type       EventType     `json:"type"`
	BookingID  int64         `json:"booking_id"`
	UserID     int64         `json:"user_id"`
	RoomID     int64         `json:"room_id"`
	Status     BookingStatus `json:"status"`
	PrevStatus BookingStatus `json:"prev_status,omitempty"`
	ActorID    int64         `json:"actor_id,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}
