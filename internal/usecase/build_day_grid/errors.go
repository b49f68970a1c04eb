package build_day_grid

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidSettings возвращается, когда настройки календаря не позволяют построить сетку
	ErrInvalidSettings = errors.New("invalid calendar settings")
)
