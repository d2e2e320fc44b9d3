package calculate_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/pricing"
	calculateQuote "github.com/m04kA/SMC-VenueBooking/internal/usecase/calculate_quote"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgHallNotFound       = "зал не найден"
)

type Handler struct {
	useCase CalculateQuoteUseCase
	logger  Logger
}

func NewHandler(useCase CalculateQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CalculateQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		respondFailure(w, http.StatusBadRequest, pricing.CodeValidation, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, calculateQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Validation failed: hall_id=%d, error=%v", req.HallID, err)
			respondFailure(w, http.StatusBadRequest, pricing.CodeValidation, calculateQuote.Reason(err))

		case errors.Is(err, calculateQuote.ErrHallNotFound):
			h.logger.Warn("POST /quotes - Hall not found: hall_id=%d", req.HallID)
			respondFailure(w, http.StatusNotFound, pricing.CodeNotFound, msgHallNotFound)

		case errors.Is(err, calculateQuote.ErrRatesNotFound):
			h.logger.Warn("POST /quotes - Rates not found: hall_id=%d, error=%v", req.HallID, err)
			respondFailure(w, http.StatusNotFound, pricing.CodeNotFound, calculateQuote.Reason(err))

		default:
			h.logger.Error("POST /quotes - Failed to calculate quote: hall_id=%d, error=%v", req.HallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)
	if !response.Valid {
		h.logger.Info("POST /quotes - Rejected by rental policy: hall_id=%d, reason=%s", req.HallID, response.Error)
	} else {
		h.logger.Info("POST /quotes - Quote calculated: hall_id=%d, date=%s, total=%.2f",
			req.HallID, req.Date, response.Quote.Total)
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}

func respondFailure(w http.ResponseWriter, status int, code, message string) {
	handlers.RespondJSON(w, status, &QuoteResponse{Valid: false, Error: message, Code: code})
}
