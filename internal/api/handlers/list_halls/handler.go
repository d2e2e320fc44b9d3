package list_halls

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

// Handle GET /api/v1/halls
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.ListActiveHalls(r.Context())
	if err != nil {
		h.logger.Error("GET /halls - Failed to list halls: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /halls - Halls retrieved successfully: count=%d", len(halls))
	handlers.RespondJSON(w, http.StatusOK, halls)
}
