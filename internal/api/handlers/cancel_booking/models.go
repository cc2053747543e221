package cancel_booking

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
