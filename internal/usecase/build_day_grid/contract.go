package build_day_grid

import "time"

// Metrics интерфейс сборщика метрик
type Metrics interface {
	ObserveGrid(result string, slots int, duration time.Duration)
	ObserveAppointment(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
