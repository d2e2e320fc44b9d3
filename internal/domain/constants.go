package domain

// Прайс-лист по умолчанию, применяется если ни одно сезонное правило не подошло
const DefaultPriceListID = "standard"

// Форматы даты
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxGuestsCount        = 1000
	MaxExtraServicesCount = 50
)
