// Package metrics contains Prometheus collectors of the calendar grid.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса в собственном реестре
type Metrics struct {
	registry *prometheus.Registry

	GridsBuilt       *prometheus.CounterVec
	SlotsGenerated   prometheus.Counter
	DropsResolved    *prometheus.CounterVec
	ComputeDuration  *prometheus.HistogramVec
	AppointmentsSeen *prometheus.CounterVec
}

// New создает и регистрирует метрики с префиксом serviceName
func New(serviceName string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		GridsBuilt: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "grids_built_total",
				Help:      "Number of day grids built, by result",
			},
			[]string{"result"},
		),
		SlotsGenerated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "slots_generated_total",
				Help:      "Number of calendar slots generated",
			},
		),
		DropsResolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "drops_resolved_total",
				Help:      "Number of drag-and-drop positions resolved, by result",
			},
			[]string{"result"},
		),
		ComputeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "compute_duration_seconds",
				Help:      "Duration of grid computations",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
			},
			[]string{"operation"},
		),
		AppointmentsSeen: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "appointments_total",
				Help:      "Appointments passed to the grid, by status",
			},
			[]string{"status"},
		),
	}

	m.registry.MustRegister(
		m.GridsBuilt,
		m.SlotsGenerated,
		m.DropsResolved,
		m.ComputeDuration,
		m.AppointmentsSeen,
	)

	return m
}

// Registry returns the registry holding the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveGrid records one day grid computation
func (m *Metrics) ObserveGrid(result string, slots int, duration time.Duration) {
	m.GridsBuilt.WithLabelValues(result).Inc()
	m.SlotsGenerated.Add(float64(slots))
	m.ComputeDuration.WithLabelValues("build_day_grid").Observe(duration.Seconds())
}

// ObserveDrop records one drop resolution
func (m *Metrics) ObserveDrop(result string, duration time.Duration) {
	m.DropsResolved.WithLabelValues(result).Inc()
	m.ComputeDuration.WithLabelValues("resolve_drop").Observe(duration.Seconds())
}

// ObserveAppointment counts an appointment by status
func (m *Metrics) ObserveAppointment(status string) {
	m.AppointmentsSeen.WithLabelValues(status).Inc()
}

// WriteTextfile сохраняет текущие значения в формате textfile-коллектора node_exporter
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
