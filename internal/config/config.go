package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/pricing"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Cache    CacheConfig    `toml:"cache"`
	Pricing  PricingConfig  `toml:"pricing"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // Пусто = только stdout
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CacheConfig настройки Redis-кэша сезонных правил
type CacheConfig struct {
	Enabled     bool   `toml:"enabled"`
	Addr        string `toml:"addr"`
	Password    string `toml:"password"`
	DB          int    `toml:"db"`
	Prefix      string `toml:"prefix"`
	TTL         int    `toml:"ttl"`          // секунды
	DialTimeout int    `toml:"dial_timeout"` // секунды
}

// TTLDuration время жизни записи кэша
func (c CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// PricingConfig границы тарификации
type PricingConfig struct {
	DefaultPriceListID      string                  `toml:"default_price_list"`
	FridayEveningFrom       string                  `toml:"friday_evening_from"`
	LateWeekdayRateFrom     string                  `toml:"late_weekday_rate_from"`
	DefaultMinimumHours     *float64                `toml:"default_minimum_hours"`     // Не задано = 2, 0 = без минимума
	CleaningGuestsThreshold *int                    `toml:"cleaning_guests_threshold"` // Не задано = 30
	AfterHours              map[string]WindowConfig `toml:"after_hours"` // weekday, friday_saturday, sunday
}

// WindowConfig рабочее окно категории дня. Close может быть "24:00" и позже (следующий день)
type WindowConfig struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// Load загружает конфигурацию из TOML файла.
// Пароли можно переопределить через .env или переменные окружения DB_PASSWORD, REDIS_PASSWORD
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.applyEnv()
	cfg.applyDefaults()

	if _, err := cfg.PricingPolicy(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Password = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "venue-booking"
	}
	if c.Cache.Prefix == "" {
		c.Cache.Prefix = "venue"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 300
	}
	if c.Cache.DialTimeout == 0 {
		c.Cache.DialTimeout = 2
	}

	defaults := pricing.DefaultPolicy()
	if c.Pricing.DefaultPriceListID == "" {
		c.Pricing.DefaultPriceListID = defaults.DefaultPriceListID
	}
	if c.Pricing.FridayEveningFrom == "" {
		c.Pricing.FridayEveningFrom = defaults.FridayEveningFrom.String()
	}
	if c.Pricing.LateWeekdayRateFrom == "" {
		c.Pricing.LateWeekdayRateFrom = defaults.LateWeekdayRateFrom.String()
	}
	if c.Pricing.DefaultMinimumHours == nil {
		c.Pricing.DefaultMinimumHours = ptr.Ptr(defaults.DefaultMinimumHours)
	}
	if c.Pricing.CleaningGuestsThreshold == nil {
		c.Pricing.CleaningGuestsThreshold = ptr.Ptr(defaults.CleaningGuestsThreshold)
	}
	if c.Pricing.AfterHours == nil {
		c.Pricing.AfterHours = make(map[string]WindowConfig)
	}
	for category, window := range defaults.AfterHours {
		if _, ok := c.Pricing.AfterHours[string(category)]; !ok {
			c.Pricing.AfterHours[string(category)] = WindowConfig{
				Open:  formatClock(window.OpenMinute),
				Close: formatClock(window.CloseMinute),
			}
		}
	}
}

// PricingPolicy собирает и проверяет границы тарификации
func (c *Config) PricingPolicy() (pricing.Policy, error) {
	defaults := pricing.DefaultPolicy()
	policy := pricing.Policy{
		DefaultPriceListID:      c.Pricing.DefaultPriceListID,
		FridayEveningFrom:       types.TimeString(c.Pricing.FridayEveningFrom),
		LateWeekdayRateFrom:     types.TimeString(c.Pricing.LateWeekdayRateFrom),
		DefaultMinimumHours:     defaults.DefaultMinimumHours,
		CleaningGuestsThreshold: defaults.CleaningGuestsThreshold,
		AfterHours:              make(map[domain.DayCategory]pricing.Window, len(c.Pricing.AfterHours)),
	}
	if c.Pricing.DefaultMinimumHours != nil {
		policy.DefaultMinimumHours = *c.Pricing.DefaultMinimumHours
	}
	if c.Pricing.CleaningGuestsThreshold != nil {
		policy.CleaningGuestsThreshold = *c.Pricing.CleaningGuestsThreshold
	}

	for name, window := range c.Pricing.AfterHours {
		category := domain.DayCategory(name)
		switch category {
		case domain.DayWeekday, domain.DayFridaySaturday, domain.DaySunday:
		default:
			return pricing.Policy{}, fmt.Errorf("%w: unknown day category %q in pricing.after_hours", ErrInvalidConfig, name)
		}

		open, err := parseClock(window.Open)
		if err != nil {
			return pricing.Policy{}, fmt.Errorf("%w: pricing.after_hours.%s.open: %v", ErrInvalidConfig, name, err)
		}
		closeAt, err := parseClock(window.Close)
		if err != nil {
			return pricing.Policy{}, fmt.Errorf("%w: pricing.after_hours.%s.close: %v", ErrInvalidConfig, name, err)
		}
		policy.AfterHours[category] = pricing.Window{OpenMinute: open, CloseMinute: closeAt}
	}

	if err := policy.Validate(); err != nil {
		return pricing.Policy{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return policy, nil
}

// parseClock разбирает "HH:MM" в минуты от полуночи, часы до 48 допустимы
func parseClock(s string) (int, error) {
	hours, minutes, ok := strings.Cut(s, ":")
	if !ok || len(minutes) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	h, err := strconv.Atoi(hours)
	if err != nil || h < 0 || h > 48 {
		return 0, fmt.Errorf("invalid hours in %q", s)
	}
	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minutes in %q", s)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
