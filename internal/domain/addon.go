package domain

// PricingType способ тарификации дополнительной услуги
type PricingType string

const (
	PricingFixed   PricingType = "fixed"    // Фиксированная цена
	PricingPerUnit PricingType = "per_unit" // Цена за каждые N гостей
	PricingComplex PricingType = "complex"  // Первая единица / каждая следующая (кальян)
)

// IsValid возвращает true для известного типа тарификации
func (p PricingType) IsValid() bool {
	switch p {
	case PricingFixed, PricingPerUnit, PricingComplex:
		return true
	default:
		return false
	}
}

// AddOnService дополнительная услуга (кальян, доп. стулья, ...)
type AddOnService struct {
	ID          int64
	Name        string
	PricingType PricingType
	IsActive    bool
	SortOrder   int
}

// AddOnCostRecord цена дополнительной услуги в рамках прайс-листа
type AddOnCostRecord struct {
	AddOnServiceID      int64
	PriceListID         string
	BasePrice           *float64
	AdditionalUnitPrice *float64
	UnitDescription     *string // Например "за 10 человек"
}

// IsUsable возвращает true, если задана хотя бы одна положительная цена.
// Иначе услуга недоступна в этом прайс-листе
func (r *AddOnCostRecord) IsUsable() bool {
	return r.Base() > 0 || r.Additional() > 0
}

// Base базовая цена или 0, если не задана
func (r *AddOnCostRecord) Base() float64 {
	if r.BasePrice == nil {
		return 0
	}
	return *r.BasePrice
}

// Additional цена каждой следующей единицы или 0, если не задана
func (r *AddOnCostRecord) Additional() float64 {
	if r.AdditionalUnitPrice == nil {
		return 0
	}
	return *r.AdditionalUnitPrice
}

// Description описание единицы тарификации или пустая строка
func (r *AddOnCostRecord) Description() string {
	if r.UnitDescription == nil {
		return ""
	}
	return *r.UnitDescription
}
