package seasonrules

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

const keySuffix = "season_rules"

// Cache read-through кэш сезонных правил в Redis.
// Любая ошибка Redis приводит к чтению из источника, запрос не падает
type Cache struct {
	source Source
	client Client
	key    string
	ttl    time.Duration
	logger Logger
}

// New создает кэш. Ключ: "<prefix>:season_rules"
func New(source Source, client Client, prefix string, ttl time.Duration, logger Logger) *Cache {
	key := keySuffix
	if prefix != "" {
		key = prefix + ":" + keySuffix
	}
	return &Cache{
		source: source,
		client: client,
		key:    key,
		ttl:    ttl,
		logger: logger,
	}
}

type cachedRule struct {
	ID          int64  `json:"id"`
	PriceListID string `json:"priceListId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	DaysOfWeek  []int  `json:"daysOfWeek"`
	Priority    int    `json:"priority"`
}

// ListSeasonRules возвращает правила из кэша, при промахе читает источник и сохраняет результат
func (c *Cache) ListSeasonRules(ctx context.Context) ([]domain.SeasonRule, error) {
	payload, err := c.client.Get(ctx, c.key).Bytes()
	switch {
	case err == nil:
		rules, decodeErr := decode(payload)
		if decodeErr == nil {
			c.logger.Debug("season rules cache: hit: key=%s, rules=%d", c.key, len(rules))
			return rules, nil
		}
		c.logger.Warn("season rules cache: %v: key=%s", decodeErr, c.key)
	case errors.Is(err, redis.Nil):
		c.logger.Debug("season rules cache: miss: key=%s", c.key)
	default:
		c.logger.Warn("season rules cache: get failed, reading storage: key=%s, error=%v", c.key, err)
	}

	rules, err := c.source.ListSeasonRules(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := encode(rules)
	if err != nil {
		c.logger.Error("season rules cache: %v", err)
		return rules, nil
	}
	if err := c.client.Set(ctx, c.key, encoded, c.ttl).Err(); err != nil {
		c.logger.Warn("season rules cache: set failed: key=%s, error=%v", c.key, err)
	}

	return rules, nil
}

func encode(rules []domain.SeasonRule) ([]byte, error) {
	cached := make([]cachedRule, 0, len(rules))
	for _, rule := range rules {
		days := make([]int, 0, len(rule.DaysOfWeek))
		for _, day := range rule.DaysOfWeek {
			days = append(days, int(day))
		}
		cached = append(cached, cachedRule{
			ID:          rule.ID,
			PriceListID: rule.PriceListID,
			StartDate:   rule.StartDate.Format(domain.DateFormat),
			EndDate:     rule.EndDate.Format(domain.DateFormat),
			DaysOfWeek:  days,
			Priority:    rule.Priority,
		})
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return payload, nil
}

func decode(payload []byte) ([]domain.SeasonRule, error) {
	var cached []cachedRule
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	rules := make([]domain.SeasonRule, 0, len(cached))
	for _, item := range cached {
		start, err := time.Parse(domain.DateFormat, item.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d start date: %v", ErrDecode, item.ID, err)
		}
		end, err := time.Parse(domain.DateFormat, item.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d end date: %v", ErrDecode, item.ID, err)
		}
		days := make([]time.Weekday, 0, len(item.DaysOfWeek))
		for _, day := range item.DaysOfWeek {
			days = append(days, time.Weekday(day))
		}
		rules = append(rules, domain.SeasonRule{
			ID:          item.ID,
			PriceListID: item.PriceListID,
			StartDate:   start,
			EndDate:     end,
			DaysOfWeek:  days,
			Priority:    item.Priority,
		})
	}
	return rules, nil
}
