package resolve_price_list

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/pricing"
	"github.com/m04kA/SMC-VenueBooking/internal/service/catalog"
)

const (
	msgDateRequired = "не указана дата"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/price-lists/resolve?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /price-lists/resolve - Missing date")
		handlers.RespondErrorCode(w, http.StatusBadRequest, pricing.CodeValidation, msgDateRequired)
		return
	}

	result, err := h.service.ResolvePriceList(r.Context(), date)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("GET /price-lists/resolve - Invalid date: date=%s", date)
			handlers.RespondErrorCode(w, http.StatusBadRequest, pricing.CodeValidation, msgInvalidDate)
			return
		}
		h.logger.Error("GET /price-lists/resolve - Failed to resolve price list: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /price-lists/resolve - Price list resolved: date=%s, price_list=%s", date, result.PriceListID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
