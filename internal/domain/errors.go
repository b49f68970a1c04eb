package domain

import "errors"

var (
	// ErrInvalidRange возвращается, когда start >= end или длительность не положительна
	ErrInvalidRange = errors.New("domain: invalid time range")

	// ErrInvalidTime возвращается, когда время выходит за пределы суток или имеет неверный формат
	ErrInvalidTime = errors.New("domain: invalid time of day")

	// ErrUnknownStatus возвращается при разборе неизвестного статуса записи
	ErrUnknownStatus = errors.New("domain: unknown appointment status")
)
