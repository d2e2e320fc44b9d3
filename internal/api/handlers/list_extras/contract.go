package list_extras

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/service/catalog/models"
)

type CatalogService interface {
	ListActiveExtras(ctx context.Context) ([]models.ExtraServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
