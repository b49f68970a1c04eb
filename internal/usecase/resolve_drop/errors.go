package resolve_drop

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidSettings возвращается при некорректных настройках календаря
	ErrInvalidSettings = errors.New("invalid calendar settings")

	// ErrNoValidPlacement возвращается, когда позиция не попадает в рабочее время.
	// Вызывающий код должен проигнорировать бросок.
	ErrNoValidPlacement = errors.New("no valid placement for drop position")

	// ErrAppointmentNotFound возвращается, когда перемещаемая запись не найдена среди записей дня
	ErrAppointmentNotFound = errors.New("appointment not found")
)
