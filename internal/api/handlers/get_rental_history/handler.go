package get_rental_history

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	"github.com/m04kA/SMC-SurfShopService/internal/service/rentals"
)

const (
	msgInvalidDate  = "data inválida, use o formato AAAA-MM-DD"
	msgInvalidLimit = "limite inválido"
)

type Handler struct {
	service RentalsService
	logger  Logger
}

func NewHandler(service RentalsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rentals/history?date=YYYY-MM-DD&limit=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	date := query.Get("date")

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.logger.Warn("GET /rentals/history - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	history, err := h.service.History(r.Context(), date, limit)
	if err != nil {
		if errors.Is(err, rentals.ErrInvalidInput) {
			h.logger.Warn("GET /rentals/history - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /rentals/history - Failed to list history: date=%q, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, history)
}
