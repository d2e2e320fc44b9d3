package pricing

import "github.com/m04kA/SMC-VenueBooking/internal/domain"

// RateTable неизменяемый снимок цен и сезонных правил, с которым работает расчет
type RateTable interface {
	RateRecord(hallID int64, priceListID string) (*domain.RateRecord, bool)
	SeasonRules() []domain.SeasonRule
	AddOnService(id int64) (*domain.AddOnService, bool)
	AddOnCostRecord(addOnID int64, priceListID string) (*domain.AddOnCostRecord, bool)
}

type rateKey struct {
	id          int64
	priceListID string
}

// Snapshot реализация RateTable в памяти
type Snapshot struct {
	rules    []domain.SeasonRule
	rates    map[rateKey]domain.RateRecord
	services map[int64]domain.AddOnService
	costs    map[rateKey]domain.AddOnCostRecord
}

// NewSnapshot копирует переданные данные в снимок.
// Порядок правил сохраняется, он важен при равных приоритетах
func NewSnapshot(
	rules []domain.SeasonRule,
	rates []domain.RateRecord,
	services []domain.AddOnService,
	costs []domain.AddOnCostRecord,
) *Snapshot {
	s := &Snapshot{
		rules:    append([]domain.SeasonRule(nil), rules...),
		rates:    make(map[rateKey]domain.RateRecord, len(rates)),
		services: make(map[int64]domain.AddOnService, len(services)),
		costs:    make(map[rateKey]domain.AddOnCostRecord, len(costs)),
	}
	for _, rate := range rates {
		s.rates[rateKey{id: rate.HallID, priceListID: rate.PriceListID}] = rate
	}
	for _, service := range services {
		s.services[service.ID] = service
	}
	for _, cost := range costs {
		s.costs[rateKey{id: cost.AddOnServiceID, priceListID: cost.PriceListID}] = cost
	}
	return s
}

func (s *Snapshot) RateRecord(hallID int64, priceListID string) (*domain.RateRecord, bool) {
	rate, ok := s.rates[rateKey{id: hallID, priceListID: priceListID}]
	if !ok {
		return nil, false
	}
	return &rate, true
}

func (s *Snapshot) SeasonRules() []domain.SeasonRule {
	return s.rules
}

func (s *Snapshot) AddOnService(id int64) (*domain.AddOnService, bool) {
	service, ok := s.services[id]
	if !ok {
		return nil, false
	}
	return &service, true
}

func (s *Snapshot) AddOnCostRecord(addOnID int64, priceListID string) (*domain.AddOnCostRecord, bool) {
	cost, ok := s.costs[rateKey{id: addOnID, priceListID: priceListID}]
	if !ok {
		return nil, false
	}
	return &cost, true
}
