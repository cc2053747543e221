package models

import (
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос администратора на смену статуса
type UpdateStatusRequest struct {
	Status    string  `json:"status"`
	PaymentID *string `json:"paymentId,omitempty"`
}

// Response модели

// RoomResponse комната в составе бронирования
type RoomResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	PricePerNight string `json:"pricePerNight"`
	Capacity      int    `json:"capacity"`
}

// UserResponse пользователь в составе бронирования (только для администратора)
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64         `json:"id"`
	UserID     int64         `json:"userId"`
	RoomID     int64         `json:"roomId"`
	CheckIn    string        `json:"checkIn"`  // "2024-06-10"
	CheckOut   string        `json:"checkOut"` // "2024-06-15"
	Nights     int           `json:"nights"`
	Guests     int           `json:"guests"`
	TotalPrice string        `json:"totalPrice"` // "500.00"
	Status     string        `json:"status"`
	PaymentID  *string       `json:"paymentId,omitempty"`
	Room       RoomResponse  `json:"room"`
	User       *UserResponse `json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// StatsResponse сводка по бронированиям
type StatsResponse struct {
	Total     int    `json:"total"`
	Pending   int    `json:"pending"`
	Confirmed int    `json:"confirmed"`
	Cancelled int    `json:"cancelled"`
	Completed int    `json:"completed"`
	Revenue   string `json:"revenue"`
}

// Методы конвертации

// FromDomainDetails конвертирует domain модель в DTO
func FromDomainDetails(d *domain.BookingDetails) *BookingResponse {
	if d == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:         d.ID,
		UserID:     d.UserID,
		RoomID:     d.RoomID,
		CheckIn:    d.CheckIn.String(),
		CheckOut:   d.CheckOut.String(),
		Nights:     d.Nights(),
		Guests:     d.Guests,
		TotalPrice: d.TotalPrice.StringFixed(domain.PriceScale),
		Status:     string(d.Status),
		PaymentID:  d.PaymentID,
		Room: RoomResponse{
			ID:            d.Room.ID,
			Name:          d.Room.Name,
			PricePerNight: d.Room.PricePerNight.StringFixed(domain.PriceScale),
			Capacity:      d.Room.Capacity,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}

	if d.User != nil {
		resp.User = &UserResponse{
			ID:    d.User.ID,
			Name:  d.User.Name,
			Email: d.User.Email,
			Role:  string(d.User.Role),
		}
	}

	return resp
}

// FromDomainDetailsList конвертирует список domain моделей в DTO
func FromDomainDetailsList(list []*domain.BookingDetails) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(list)),
	}

	for _, d := range list {
		if bookingResp := FromDomainDetails(d); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	resp.Total = len(resp.Bookings)

	return resp
}

// FromDomainStats конвертирует статистику в DTO
func FromDomainStats(s *domain.BookingStats) *StatsResponse {
	return &StatsResponse{
		Total:     s.Total,
		Pending:   s.Pending,
		Confirmed: s.Confirmed,
		Cancelled: s.Cancelled,
		Completed: s.Completed,
		Revenue:   s.Revenue.StringFixed(domain.PriceScale),
	}
}
