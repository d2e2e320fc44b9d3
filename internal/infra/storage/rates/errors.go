package rates

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("rates.repository: hall not found")

	// ErrPriceListNotFound возвращается, когда прайс-лист не найден
	ErrPriceListNotFound = errors.New("rates.repository: price list not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rates.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rates.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rates.repository: failed to scan row")

	// ErrInvalidRecord возвращается, если запись в БД нарушает инварианты домена
	ErrInvalidRecord = errors.New("rates.repository: invalid record in storage")
)
