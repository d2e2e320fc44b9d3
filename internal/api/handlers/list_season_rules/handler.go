package list_season_rules

import (
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
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

// Handle GET /api/v1/season-rules
// Правила отдаются в порядке применения: priority DESC, затем по ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rules, err := h.service.ListSeasonRules(r.Context())
	if err != nil {
		h.logger.Error("GET /season-rules - Failed to list season rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /season-rules - Season rules retrieved successfully: count=%d", len(rules))
	handlers.RespondJSON(w, http.StatusOK, rules)
}
