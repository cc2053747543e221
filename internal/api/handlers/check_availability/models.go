package check_availability

import (
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	checkAvailability "github.com/m04kA/SMC-HotelBooking/internal/usecase/check_availability"
)

const msgUnavailable = "Комната недоступна на выбранные даты"

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	RoomID   int64  `json:"roomId" validate:"required,gt=0"`
	CheckIn  string `json:"checkIn" validate:"required"`
	CheckOut string `json:"checkOut" validate:"required"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available     bool    `json:"available"`
	Nights        int     `json:"nights"`
	PricePerNight string  `json:"pricePerNight"`
	TotalPrice    *string `json:"totalPrice,omitempty"`
	Message       string  `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	checkIn, err := domain.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := domain.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		RoomID:   r.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Available:     resp.Available,
		Nights:        resp.Nights,
		PricePerNight: resp.PricePerNight.StringFixed(domain.PriceScale),
	}

	if !resp.Available {
		out.Message = msgUnavailable
		return out
	}

	total := resp.TotalPrice.StringFixed(domain.PriceScale)
	out.TotalPrice = &total
	return out
}
