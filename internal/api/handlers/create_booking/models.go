package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID   int64  `json:"roomId" validate:"required,gt=0"`
	CheckIn  string `json:"checkIn" validate:"required"`  // "2024-06-10"
	CheckOut string `json:"checkOut" validate:"required"` // "2024-06-15"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	RoomID        int64  `json:"roomId"`
	RoomName      string `json:"roomName"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Nights        int    `json:"nights"`
	PricePerNight string `json:"pricePerNight"`
	TotalPrice    string `json:"totalPrice"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	checkIn, err := domain.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := domain.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:   userID,
		RoomID:   r.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		RoomID:        resp.RoomID,
		RoomName:      resp.RoomName,
		CheckIn:       resp.CheckIn.String(),
		CheckOut:      resp.CheckOut.String(),
		Nights:        resp.Nights,
		PricePerNight: resp.PricePerNight.StringFixed(domain.PriceScale),
		TotalPrice:    resp.TotalPrice.StringFixed(domain.PriceScale),
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
