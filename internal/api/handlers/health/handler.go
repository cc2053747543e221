package health

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
)

// Pinger проверка доступности хранилища
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}

const msgStorageUnreachable = "хранилище недоступно"

type Response struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

type Handler struct {
	pinger Pinger
	logger Logger
}

// NewHandler pinger может быть nil для хранилища в памяти
func NewHandler(pinger Pinger, logger Logger) *Handler {
	return &Handler{
		pinger: pinger,
		logger: logger,
	}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.pinger == nil {
		handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok", Storage: "memory"})
		return
	}

	if err := h.pinger.PingContext(r.Context()); err != nil {
		h.logger.Warn("GET /healthz - Storage ping failed: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgStorageUnreachable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok", Storage: "ok"})
}
