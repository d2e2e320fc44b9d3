package calculate_quote

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// RatesRepository интерфейс хранилища ставок
type RatesRepository interface {
	GetHall(ctx context.Context, id int64) (*domain.Hall, error)
	GetRateRecordsByHall(ctx context.Context, hallID int64) ([]domain.RateRecord, error)
	GetAddOnServices(ctx context.Context, ids []int64) ([]domain.AddOnService, error)
	GetAddOnCostRecords(ctx context.Context, ids []int64) ([]domain.AddOnCostRecord, error)
}

// SeasonRuleProvider источник сезонных правил (репозиторий или кэш)
type SeasonRuleProvider interface {
	ListSeasonRules(ctx context.Context) ([]domain.SeasonRule, error)
}

// Metrics интерфейс для учета результатов расчета
type Metrics interface {
	IncQuote(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
