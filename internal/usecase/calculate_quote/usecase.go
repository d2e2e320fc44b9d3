package calculate_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	ratesRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/rates"
	"github.com/m04kA/SMC-VenueBooking/internal/pricing"
)

// UseCase use case расчета стоимости аренды зала
type UseCase struct {
	ratesRepo   RatesRepository
	seasonRules SeasonRuleProvider
	calculator  *pricing.Calculator
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ratesRepo RatesRepository,
	seasonRules SeasonRuleProvider,
	calculator *pricing.Calculator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		ratesRepo:   ratesRepo,
		seasonRules: seasonRules,
		calculator:  calculator,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute считает стоимость аренды. Каждый вызов читает актуальные цены, результат не сохраняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculateQuote: hall=%d, date=%s, time=%s-%s, guests=%d, extras=%v",
		req.HallID, req.Date, req.StartTime, req.EndTime, req.GuestsCount, req.ExtraServiceIDs)

	resp, err := uc.execute(ctx, req)
	uc.metrics.IncQuote(outcome(resp, err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	input := toInput(req)

	// 1. Валидация входных данных
	if err := pricing.ValidateInput(input); err != nil {
		uc.logger.Warn("CalculateQuote: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Получаем зал
	hall, err := uc.ratesRepo.GetHall(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, ratesRepo.ErrHallNotFound) {
			uc.logger.Warn("CalculateQuote: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("CalculateQuote: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}
	if !hall.IsActive {
		uc.logger.Warn("CalculateQuote: hall id=%d is inactive", req.HallID)
		return nil, ErrHallNotFound
	}

	// 3. Ставки зала по всем прайс-листам
	rates, err := uc.ratesRepo.GetRateRecordsByHall(ctx, hall.ID)
	if err != nil {
		uc.logger.Error("CalculateQuote: failed to get rates for hall id=%d: %v", hall.ID, err)
		return nil, fmt.Errorf("%w: failed to get hall rates: %v", ErrInternal, err)
	}

	// 4. Сезонные правила
	rules, err := uc.seasonRules.ListSeasonRules(ctx)
	if err != nil {
		uc.logger.Error("CalculateQuote: failed to get season rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get season rules: %v", ErrInternal, err)
	}

	// 5. Выбранные дополнительные услуги и их цены
	services, costs, err := uc.loadAddOns(ctx, req.ExtraServiceIDs)
	if err != nil {
		return nil, err
	}

	// 6. Расчет по снимку цен
	snapshot := pricing.NewSnapshot(rules, rates, services, costs)
	result, err := uc.calculator.Calculate(input, snapshot)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrNotFound):
			uc.logger.Warn("CalculateQuote: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrRatesNotFound, err)
		case errors.Is(err, pricing.ErrValidation):
			uc.logger.Warn("CalculateQuote: validation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("CalculateQuote: calculation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	if !result.Valid {
		uc.logger.Info("CalculateQuote: hall=%d rejected by policy: %s", hall.ID, result.Error)
		return &Response{Valid: false, Code: result.Code, Error: result.Error}, nil
	}

	// 7. Предупреждение о вместимости
	quote := result.Quote
	if !hall.FitsGuests(req.GuestsCount) {
		quote.Warnings = append(quote.Warnings, fmt.Sprintf("guests count %d exceeds hall capacity %d",
			req.GuestsCount, hall.Capacity))
	}

	uc.logger.Info("CalculateQuote: hall=%d, priceList=%s, category=%s, total=%.2f",
		hall.ID, quote.ResolvedPriceListID, quote.DayCategory, quote.Total)

	return &Response{Valid: true, Quote: quote}, nil
}

// loadAddOns загружает активные услуги и их цены. Неактивные услуги в снимок не попадают
func (uc *UseCase) loadAddOns(ctx context.Context, ids []int64) ([]domain.AddOnService, []domain.AddOnCostRecord, error) {
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return nil, nil, nil
	}

	services, err := uc.ratesRepo.GetAddOnServices(ctx, unique)
	if err != nil {
		uc.logger.Error("CalculateQuote: failed to get extra services %v: %v", unique, err)
		return nil, nil, fmt.Errorf("%w: failed to get extra services: %v", ErrInternal, err)
	}

	active := make([]domain.AddOnService, 0, len(services))
	for _, service := range services {
		if !service.IsActive {
			uc.logger.Warn("CalculateQuote: extra service id=%d is inactive", service.ID)
			continue
		}
		active = append(active, service)
	}

	costs, err := uc.ratesRepo.GetAddOnCostRecords(ctx, unique)
	if err != nil {
		uc.logger.Error("CalculateQuote: failed to get extra service prices %v: %v", unique, err)
		return nil, nil, fmt.Errorf("%w: failed to get extra service prices: %v", ErrInternal, err)
	}

	return active, costs, nil
}

func toInput(req *Request) pricing.Input {
	return pricing.Input{
		HallID:          req.HallID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		GuestsCount:     req.GuestsCount,
		ExtraServiceIDs: req.ExtraServiceIDs,
		FoodAlcohol:     req.FoodAlcohol,
	}
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func outcome(resp *Response, err error) string {
	switch {
	case err == nil && resp.Valid:
		return resultValid
	case err == nil:
		return resultPolicy
	case errors.Is(err, ErrInvalidInput):
		return resultValidation
	case errors.Is(err, ErrHallNotFound), errors.Is(err, ErrRatesNotFound):
		return resultNotFound
	default:
		return resultError
	}
}
