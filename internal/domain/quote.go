package domain

// DayCategory категория дня, определяющая часовую ставку
type DayCategory string

const (
	DayWeekday        DayCategory = "weekday"
	DayFridaySaturday DayCategory = "friday_saturday"
	DaySunday         DayCategory = "sunday"
)

// AddOnLine строка расчета по одной дополнительной услуге
type AddOnLine struct {
	AddOnServiceID int64
	Name           string
	PricingType    PricingType
	Quantity       int
	Cost           float64
}

// Quote детализированный расчет стоимости аренды. Не сохраняется
type Quote struct {
	BasePrice           float64 // Часовая ставка
	BillableHours       float64
	BaseCost            float64
	CleaningCost        float64
	AfterHoursFee       float64
	AddOnCost           float64
	Total               float64
	DayCategory         DayCategory
	ResolvedPriceListID string
	RatePriceListID     string // Прайс-лист, из которого взяты ставки зала
	AddOns              []AddOnLine
	Warnings            []string
}
