package models

// HallResponse зал, доступный для аренды
type HallResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	SortOrder int    `json:"sortOrder"`
}

// ExtraServiceResponse дополнительная услуга
type ExtraServiceResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PricingType string `json:"pricingType"` // fixed, per_unit, complex
	SortOrder   int    `json:"sortOrder"`
}

// SeasonRuleResponse сезонное правило
type SeasonRuleResponse struct {
	ID          int64  `json:"id"`
	PriceListID string `json:"priceListId"`
	StartDate   string `json:"startDate"`  // YYYY-MM-DD
	EndDate     string `json:"endDate"`    // YYYY-MM-DD, включительно
	DaysOfWeek  []int  `json:"daysOfWeek"` // 0 = воскресенье ... 6 = суббота
	Priority    int    `json:"priority"`
}

// ResolvedPriceListResponse прайс-лист, действующий в указанную дату
type ResolvedPriceListResponse struct {
	Date          string `json:"date"`
	PriceListID   string `json:"priceListId"`
	PriceListName string `json:"priceListName,omitempty"`
}
