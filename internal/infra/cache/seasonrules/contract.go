package seasonrules

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Source источник сезонных правил (репозиторий)
type Source interface {
	ListSeasonRules(ctx context.Context) ([]domain.SeasonRule, error)
}

// Client подмножество команд Redis, которыми пользуется кэш
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
