package admin_update_status

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings/models"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, identity domain.Identity, bookingID int64, req *models.UpdateStatusRequest) error
	GetByID(ctx context.Context, identity domain.Identity, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
