package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	ratesRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/rates"
	"github.com/m04kA/SMC-VenueBooking/internal/pricing"
	"github.com/m04kA/SMC-VenueBooking/internal/service/catalog/models"
)

// Service справочники для выбора зала, услуг и даты до расчета стоимости
type Service struct {
	repo               CatalogRepository
	seasonRules        SeasonRuleProvider
	defaultPriceListID string
	logger             Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(
	repo CatalogRepository,
	seasonRules SeasonRuleProvider,
	defaultPriceListID string,
	logger Logger,
) *Service {
	return &Service{
		repo:               repo,
		seasonRules:        seasonRules,
		defaultPriceListID: defaultPriceListID,
		logger:             logger,
	}
}

// ListActiveHalls возвращает активные залы в порядке сортировки
func (s *Service) ListActiveHalls(ctx context.Context) ([]models.HallResponse, error) {
	halls, err := s.repo.ListHalls(ctx, true)
	if err != nil {
		s.logger.Error("ListActiveHalls: failed to get halls: %v", err)
		return nil, fmt.Errorf("%w: failed to get halls: %v", ErrInternal, err)
	}

	response := make([]models.HallResponse, 0, len(halls))
	for _, hall := range halls {
		response = append(response, models.HallResponse{
			ID:        hall.ID,
			Name:      hall.Name,
			Capacity:  hall.Capacity,
			SortOrder: hall.SortOrder,
		})
	}
	return response, nil
}

// ListActiveExtras возвращает активные дополнительные услуги
func (s *Service) ListActiveExtras(ctx context.Context) ([]models.ExtraServiceResponse, error) {
	services, err := s.repo.ListAddOnServices(ctx, true)
	if err != nil {
		s.logger.Error("ListActiveExtras: failed to get extra services: %v", err)
		return nil, fmt.Errorf("%w: failed to get extra services: %v", ErrInternal, err)
	}

	response := make([]models.ExtraServiceResponse, 0, len(services))
	for _, service := range services {
		response = append(response, models.ExtraServiceResponse{
			ID:          service.ID,
			Name:        service.Name,
			PricingType: string(service.PricingType),
			SortOrder:   service.SortOrder,
		})
	}
	return response, nil
}

// ListSeasonRules возвращает все сезонные правила в порядке применения
func (s *Service) ListSeasonRules(ctx context.Context) ([]models.SeasonRuleResponse, error) {
	rules, err := s.seasonRules.ListSeasonRules(ctx)
	if err != nil {
		s.logger.Error("ListSeasonRules: failed to get season rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get season rules: %v", ErrInternal, err)
	}

	response := make([]models.SeasonRuleResponse, 0, len(rules))
	for _, rule := range rules {
		days := make([]int, 0, len(rule.DaysOfWeek))
		for _, day := range rule.DaysOfWeek {
			days = append(days, int(day))
		}
		response = append(response, models.SeasonRuleResponse{
			ID:          rule.ID,
			PriceListID: rule.PriceListID,
			StartDate:   rule.StartDate.Format(domain.DateFormat),
			EndDate:     rule.EndDate.Format(domain.DateFormat),
			DaysOfWeek:  days,
			Priority:    rule.Priority,
		})
	}
	return response, nil
}

// ResolvePriceList определяет прайс-лист, действующий в дату date (YYYY-MM-DD)
func (s *Service) ResolvePriceList(ctx context.Context, date string) (*models.ResolvedPriceListResponse, error) {
	// 1. Валидируем дату
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		s.logger.Warn("ResolvePriceList: invalid date %q: %v", date, err)
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	// 2. Получаем правила и выбираем прайс-лист
	rules, err := s.seasonRules.ListSeasonRules(ctx)
	if err != nil {
		s.logger.Error("ResolvePriceList: failed to get season rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get season rules: %v", ErrInternal, err)
	}
	priceListID := pricing.ResolvePriceList(day, rules, s.defaultPriceListID)

	response := &models.ResolvedPriceListResponse{
		Date:        day.Format(domain.DateFormat),
		PriceListID: priceListID,
	}

	// 3. Название прайс-листа, если он заведен
	priceList, err := s.repo.GetPriceList(ctx, priceListID)
	switch {
	case err == nil:
		response.PriceListName = priceList.Name
	case errors.Is(err, ratesRepo.ErrPriceListNotFound):
		s.logger.Warn("ResolvePriceList: price list %q is referenced by rules but not found", priceListID)
	default:
		s.logger.Error("ResolvePriceList: failed to get price list %q: %v", priceListID, err)
		return nil, fmt.Errorf("%w: failed to get price list: %v", ErrInternal, err)
	}

	return response, nil
}
