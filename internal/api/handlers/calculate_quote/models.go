package calculate_quote

import (
	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	calculateQuote "github.com/m04kA/SMC-VenueBooking/internal/usecase/calculate_quote"
)

// CalculateQuoteRequest HTTP request model
type CalculateQuoteRequest struct {
	HallID          int64   `json:"hallId"`
	Date            string  `json:"date"`      // "2025-03-04"
	StartTime       string  `json:"startTime"` // "12:00"
	EndTime         string  `json:"endTime"`   // "16:00", "02:00" = следующий день
	GuestsCount     int     `json:"guestsCount"`
	ExtraServiceIDs []int64 `json:"extraServiceIds,omitempty"`
	FoodAlcohol     bool    `json:"foodAlcohol"`
}

// QuoteResponse HTTP response model.
// При valid=false заполнены error и code, quote отсутствует
type QuoteResponse struct {
	Valid bool       `json:"valid"`
	Quote *QuoteBody `json:"quote,omitempty"`
	Error string     `json:"error,omitempty"`
	Code  string     `json:"code,omitempty"`
}

// QuoteBody детализация стоимости
type QuoteBody struct {
	BasePrice       float64             `json:"basePrice"`
	BillableHours   float64             `json:"billableHours"`
	BaseCost        float64             `json:"baseCost"`
	CleaningCost    float64             `json:"cleaningCost"`
	AfterHoursFee   float64             `json:"afterHoursFee"`
	AddOnCost       float64             `json:"addOnCost"`
	Total           float64             `json:"total"`
	DayCategory     string              `json:"dayCategory"`
	PriceListID     string              `json:"priceListId"`
	RatePriceListID string              `json:"ratePriceListId"`
	AddOns          []AddOnLineResponse `json:"addOns"`
	Warnings        []string            `json:"warnings"`
}

// AddOnLineResponse стоимость одной дополнительной услуги
type AddOnLineResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	PricingType string  `json:"pricingType"`
	Quantity    int     `json:"quantity"`
	Cost        float64 `json:"cost"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CalculateQuoteRequest) ToUseCaseRequest() *calculateQuote.Request {
	return &calculateQuote.Request{
		HallID:          r.HallID,
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		GuestsCount:     r.GuestsCount,
		ExtraServiceIDs: r.ExtraServiceIDs,
		FoodAlcohol:     r.FoodAlcohol,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculateQuote.Response) *QuoteResponse {
	if !resp.Valid || resp.Quote == nil {
		return &QuoteResponse{Valid: false, Error: resp.Error, Code: resp.Code}
	}
	return &QuoteResponse{Valid: true, Quote: fromQuote(resp.Quote)}
}

func fromQuote(q *domain.Quote) *QuoteBody {
	addOns := make([]AddOnLineResponse, 0, len(q.AddOns))
	for _, line := range q.AddOns {
		addOns = append(addOns, AddOnLineResponse{
			ID:          line.AddOnServiceID,
			Name:        line.Name,
			PricingType: string(line.PricingType),
			Quantity:    line.Quantity,
			Cost:        line.Cost,
		})
	}

	warnings := q.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &QuoteBody{
		BasePrice:       q.BasePrice,
		BillableHours:   q.BillableHours,
		BaseCost:        q.BaseCost,
		CleaningCost:    q.CleaningCost,
		AfterHoursFee:   q.AfterHoursFee,
		AddOnCost:       q.AddOnCost,
		Total:           q.Total,
		DayCategory:     string(q.DayCategory),
		PriceListID:     q.ResolvedPriceListID,
		RatePriceListID: q.RatePriceListID,
		AddOns:          addOns,
		Warnings:        warnings,
	}
}
