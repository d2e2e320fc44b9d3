package list_halls

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/service/catalog/models"
)

type CatalogService interface {
	ListActiveHalls(ctx context.Context) ([]models.HallResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
