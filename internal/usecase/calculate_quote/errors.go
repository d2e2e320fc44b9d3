package calculate_quote

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-VenueBooking/internal/pricing"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_quote: invalid input data")

	// ErrHallNotFound возвращается, когда зал не найден или неактивен
	ErrHallNotFound = errors.New("calculate_quote: hall not found")

	// ErrRatesNotFound возвращается, когда для зала или услуги нет цен
	ErrRatesNotFound = errors.New("calculate_quote: rates not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_quote: internal error")
)

// Значения метки result метрики quotes_total
const (
	resultValid      = "valid"
	resultPolicy     = "policy"
	resultValidation = "validation"
	resultNotFound   = "not_found"
	resultError      = "error"
)

// clientErrors ошибки, чьи префиксы убираются из текста для клиента, в порядке вложенности
var clientErrors = []error{ErrInvalidInput, ErrHallNotFound, ErrRatesNotFound, pricing.ErrValidation, pricing.ErrNotFound}

// Reason текст ошибки для клиента без префиксов пакетных ошибок,
// например "date is required" или "extra service 7"
func Reason(err error) string {
	msg := err.Error()
	for _, known := range clientErrors {
		msg = strings.TrimPrefix(msg, known.Error()+": ")
	}
	return msg
}
