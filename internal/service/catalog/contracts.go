package catalog

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// CatalogRepository интерфейс хранилища залов и услуг
type CatalogRepository interface {
	ListHalls(ctx context.Context, activeOnly bool) ([]domain.Hall, error)
	ListAddOnServices(ctx context.Context, activeOnly bool) ([]domain.AddOnService, error)
	GetPriceList(ctx context.Context, id string) (*domain.PriceList, error)
}

// SeasonRuleProvider источник сезонных правил (репозиторий или кэш)
type SeasonRuleProvider interface {
	ListSeasonRules(ctx context.Context) ([]domain.SeasonRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
