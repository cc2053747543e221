package admin_update_status

import (
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
// Допустимость статуса проверяет сервис
type UpdateStatusRequest struct {
	Status    string  `json:"status" validate:"required"`
	PaymentID *string `json:"paymentId,omitempty" validate:"omitempty,min=1,max=255"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status:    r.Status,
		PaymentID: r.PaymentID,
	}
}
