package crmpayload

import "errors"

var (
	// ErrInvalidPayload возвращается при некорректных данных записи
	ErrInvalidPayload = errors.New("crmpayload: invalid appointment payload")

	// ErrDecode возвращается, когда JSON не удалось разобрать
	ErrDecode = errors.New("crmpayload: failed to decode payload")
)
