package pricing

import "errors"

var (
	// ErrValidation возвращается при некорректных или неполных входных данных
	ErrValidation = errors.New("pricing: validation error")

	// ErrNotFound возвращается, если для зала, прайс-листа или услуги нет данных о ценах
	ErrNotFound = errors.New("pricing: rate data not found")

	// ErrUnknownPricingType возвращается для неизвестного типа тарификации услуги
	ErrUnknownPricingType = errors.New("pricing: unknown pricing type")
)

// Коды результата, отдаваемые клиенту
const (
	CodeValidation = "ValidationError"
	CodeNotFound   = "NotFoundError"
	CodePolicy     = "PolicyError"
)

// ErrorCode возвращает код для ошибки расчета или пустую строку
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	default:
		return ""
	}
}
