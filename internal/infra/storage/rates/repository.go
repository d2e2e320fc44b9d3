package rates

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
)

// Repository хранилище залов, ставок, сезонных правил и дополнительных услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ставок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var hallColumns = []string{"id", "name", "capacity", "is_active", "sort_order"}

// GetHall получает зал по ID, включая неактивные
func (r *Repository) GetHall(ctx context.Context, id int64) (*domain.Hall, error) {
	query, args, err := psqlbuilder.Select(hallColumns...).
		From("halls").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHall - build select query: %v", ErrBuildQuery, err)
	}

	var hall domain.Hall
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Capacity,
		&hall.IsActive,
		&hall.SortOrder,
	)
	if err == sql.ErrNoRows {
		return nil, ErrHallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHall - scan hall: %v", ErrScanRow, err)
	}

	return &hall, nil
}

// ListHalls получает залы в порядке сортировки
func (r *Repository) ListHalls(ctx context.Context, activeOnly bool) ([]domain.Hall, error) {
	selectBuilder := psqlbuilder.Select(hallColumns...).
		From("halls").
		OrderBy("sort_order ASC", "id ASC")
	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListHalls - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHalls - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	halls := make([]domain.Hall, 0)
	for rows.Next() {
		var hall domain.Hall
		if err := rows.Scan(&hall.ID, &hall.Name, &hall.Capacity, &hall.IsActive, &hall.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: ListHalls - scan hall: %v", ErrScanRow, err)
		}
		halls = append(halls, hall)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHalls - rows iteration: %v", ErrScanRow, err)
	}

	return halls, nil
}

// GetPriceList получает прайс-лист по идентификатору
func (r *Repository) GetPriceList(ctx context.Context, id string) (*domain.PriceList, error) {
	query, args, err := psqlbuilder.Select("id", "name").
		From("price_lists").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPriceList - build select query: %v", ErrBuildQuery, err)
	}

	var priceList domain.PriceList
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&priceList.ID, &priceList.Name)
	if err == sql.ErrNoRows {
		return nil, ErrPriceListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPriceList - scan price list: %v", ErrScanRow, err)
	}

	return &priceList, nil
}

// GetRateRecordsByHall получает ставки зала по всем прайс-листам
func (r *Repository) GetRateRecordsByHall(ctx context.Context, hallID int64) ([]domain.RateRecord, error) {
	query, args, err := psqlbuilder.Select(
		"hall_id",
		"price_list_id",
		"weekday_rate_10_22",
		"weekday_rate_22_00",
		"friday_saturday_rate",
		"sunday_rate",
		"cleaning_fee_up_to_30",
		"cleaning_fee_over_30",
		"after_hours_hourly_fee",
		"minimum_hours",
		"minimum_hours_saturday",
		"minimum_hours_food_alcohol",
	).
		From("hall_rates").
		Where(squirrel.Eq{"hall_id": hallID}).
		OrderBy("price_list_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRateRecordsByHall - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRateRecordsByHall - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]domain.RateRecord, 0)
	for rows.Next() {
		var (
			record          domain.RateRecord
			saturdayMinimum sql.NullFloat64
		)
		err := rows.Scan(
			&record.HallID,
			&record.PriceListID,
			&record.WeekdayRate10To22,
			&record.WeekdayRate22To00,
			&record.FridaySaturdayRate,
			&record.SundayRate,
			&record.CleaningFeeUpTo30Guests,
			&record.CleaningFeeOver30Guests,
			&record.AfterHoursHourlyFee,
			&record.MinimumHours,
			&saturdayMinimum,
			&record.MinimumHoursBeforeFoodAlcohol,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetRateRecordsByHall - scan rate: %v", ErrScanRow, err)
		}
		record.MinimumHoursOnSaturday = nullFloat(saturdayMinimum)
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("%w: hall %d rates %q: %v", ErrInvalidRecord, record.HallID, record.PriceListID, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRateRecordsByHall - rows iteration: %v", ErrScanRow, err)
	}

	return records, nil
}

// ListSeasonRules получает все сезонные правила.
// Порядок: priority DESC, id ASC, при равном приоритете раньше идет правило с меньшим ID
func (r *Repository) ListSeasonRules(ctx context.Context) ([]domain.SeasonRule, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"price_list_id",
		"start_date",
		"end_date",
		"days_of_week",
		"priority",
	).
		From("season_rules").
		OrderBy("priority DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSeasonRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSeasonRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.SeasonRule, 0)
	for rows.Next() {
		var (
			rule       domain.SeasonRule
			daysOfWeek pq.Int64Array
		)
		err := rows.Scan(
			&rule.ID,
			&rule.PriceListID,
			&rule.StartDate,
			&rule.EndDate,
			&daysOfWeek,
			&rule.Priority,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListSeasonRules - scan rule: %v", ErrScanRow, err)
		}

		rule.DaysOfWeek = weekdaysFromMask(daysOfWeek)
		rule.StartDate = domain.DateOnly(rule.StartDate)
		rule.EndDate = domain.DateOnly(rule.EndDate)
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("%w: season rule %d: %v", ErrInvalidRecord, rule.ID, err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSeasonRules - rows iteration: %v", ErrScanRow, err)
	}

	return rules, nil
}

var addOnColumns = []string{"id", "name", "pricing_type", "is_active", "sort_order"}

// ListAddOnServices получает дополнительные услуги в порядке сортировки
func (r *Repository) ListAddOnServices(ctx context.Context, activeOnly bool) ([]domain.AddOnService, error) {
	selectBuilder := psqlbuilder.Select(addOnColumns...).
		From("extra_services").
		OrderBy("sort_order ASC", "id ASC")
	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAddOnServices - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryAddOnServices(ctx, "ListAddOnServices", query, args)
}

// GetAddOnServices получает услуги по списку ID. Отсутствующие ID просто не попадают в результат
func (r *Repository) GetAddOnServices(ctx context.Context, ids []int64) ([]domain.AddOnService, error) {
	if len(ids) == 0 {
		return []domain.AddOnService{}, nil
	}

	query, args, err := psqlbuilder.Select(addOnColumns...).
		From("extra_services").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("sort_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAddOnServices - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryAddOnServices(ctx, "GetAddOnServices", query, args)
}

// GetAddOnCostRecords получает цены услуг по всем прайс-листам
func (r *Repository) GetAddOnCostRecords(ctx context.Context, ids []int64) ([]domain.AddOnCostRecord, error) {
	if len(ids) == 0 {
		return []domain.AddOnCostRecord{}, nil
	}

	query, args, err := psqlbuilder.Select(
		"extra_service_id",
		"price_list_id",
		"base_price",
		"additional_unit_price",
		"unit_description",
	).
		From("extra_service_prices").
		Where(squirrel.Eq{"extra_service_id": ids}).
		OrderBy("extra_service_id ASC", "price_list_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAddOnCostRecords - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAddOnCostRecords - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]domain.AddOnCostRecord, 0)
	for rows.Next() {
		var (
			record          domain.AddOnCostRecord
			basePrice       sql.NullFloat64
			additionalPrice sql.NullFloat64
			description     sql.NullString
		)
		err := rows.Scan(
			&record.AddOnServiceID,
			&record.PriceListID,
			&basePrice,
			&additionalPrice,
			&description,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAddOnCostRecords - scan price: %v", ErrScanRow, err)
		}
		record.BasePrice = nullFloat(basePrice)
		record.AdditionalUnitPrice = nullFloat(additionalPrice)
		if description.Valid {
			record.UnitDescription = ptr.Ptr(description.String)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAddOnCostRecords - rows iteration: %v", ErrScanRow, err)
	}

	return records, nil
}

func (r *Repository) queryAddOnServices(ctx context.Context, method, query string, args []interface{}) ([]domain.AddOnService, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	services := make([]domain.AddOnService, 0)
	for rows.Next() {
		var service domain.AddOnService
		err := rows.Scan(
			&service.ID,
			&service.Name,
			&service.PricingType,
			&service.IsActive,
			&service.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan service: %v", ErrScanRow, method, err)
		}
		if err := checkAddOnService(&service); err != nil {
			return nil, fmt.Errorf("%w: %s - %v", ErrInvalidRecord, method, err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, method, err)
	}

	return services, nil
}

// checkAddOnService проверяет тип тарификации услуги из БД
func checkAddOnService(service *domain.AddOnService) error {
	if !service.PricingType.IsValid() {
		return fmt.Errorf("extra service %d has unknown pricing type %q", service.ID, service.PricingType)
	}
	return nil
}

// weekdaysFromMask преобразует маску из БД (0 = воскресенье ... 6 = суббота)
func weekdaysFromMask(mask []int64) []time.Weekday {
	days := make([]time.Weekday, 0, len(mask))
	for _, day := range mask {
		days = append(days, time.Weekday(day))
	}
	return days
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return ptr.Ptr(v.Float64)
}
