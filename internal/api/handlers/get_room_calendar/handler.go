package get_room_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	getRoomCalendar "github.com/m04kA/SMC-HotelBooking/internal/usecase/get_room_calendar"
)

const (
	msgInvalidRoomID    = "некорректный ID комнаты"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "'to' должна быть позже 'from'"
	msgRangeTooLong     = "слишком длинный период, не более 180 дней"
	msgRoomNotFound     = "комната не найдена"
)

type Handler struct {
	useCase GetRoomCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/calendar - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()

	from, err := parseOptionalDate(query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /rooms/%d/calendar - Invalid 'from': %v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := parseOptionalDate(query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /rooms/%d/calendar - Invalid 'to': %v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getRoomCalendar.Request{
		RoomID: roomID,
		From:   from,
		To:     to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getRoomCalendar.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/%d/calendar - Room not found", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getRoomCalendar.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getRoomCalendar.ErrRangeTooLong):
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getRoomCalendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRoomID)

		case errors.Is(err, getRoomCalendar.ErrStorage):
			h.logger.Error("GET /rooms/%d/calendar - Storage unavailable: %v", roomID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /rooms/%d/calendar - Failed: %v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
