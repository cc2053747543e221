package domain

import "github.com/shopspring/decimal"

// Room is the read-only view of a room needed for booking
type Room struct {
	ID            int64
	Name          string
	PricePerNight decimal.Decimal
	Capacity      int
	IsAvailable   bool
}
