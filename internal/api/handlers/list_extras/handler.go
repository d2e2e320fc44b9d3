package list_extras

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

// Handle GET /api/v1/extras
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	extras, err := h.service.ListActiveExtras(r.Context())
	if err != nil {
		h.logger.Error("GET /extras - Failed to list extra services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /extras - Extra services retrieved successfully: count=%d", len(extras))
	handlers.RespondJSON(w, http.StatusOK, extras)
}
