package seasonrules

import "errors"

var (
	// ErrDecode возвращается, если закэшированное значение не удалось разобрать
	ErrDecode = errors.New("seasonrules.cache: failed to decode cached rules")

	// ErrEncode возвращается, если правила не удалось сериализовать
	ErrEncode = errors.New("seasonrules.cache: failed to encode rules")
)
