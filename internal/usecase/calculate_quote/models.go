package calculate_quote

import "github.com/m04kA/SMC-VenueBooking/internal/domain"

// Request модель запроса на расчет стоимости аренды
type Request struct {
	HallID          int64   // ID зала
	Date            string  // Дата аренды, YYYY-MM-DD
	StartTime       string  // Время начала, HH:MM
	EndTime         string  // Время окончания, HH:MM (<= начала - следующий день)
	GuestsCount     int     // Количество гостей
	ExtraServiceIDs []int64 // Дополнительные услуги, повтор ID = несколько единиц
	FoodAlcohol     bool    // Планируются еда и алкоголь
}

// Response модель ответа с расчетом.
// При нарушении правил аренды Valid=false, Code и Error заполнены, Quote пустой
type Response struct {
	Valid bool
	Quote *domain.Quote
	Code  string
	Error string
}
