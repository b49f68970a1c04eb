package resolve_drop

import "time"

// Metrics интерфейс сборщика метрик
type Metrics interface {
	ObserveDrop(result string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
