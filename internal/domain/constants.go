package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Money
const (
	PriceScale = 2 // digits after the decimal point
)

// ActiveStatuses statuses that occupy a room for their dates
// Used by the overlap check and the exclusion constraint
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses every known booking status
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}
