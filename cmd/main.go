package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarGrid/internal/config"
	"github.com/m04kA/SMC-CalendarGrid/internal/domain"
	"github.com/m04kA/SMC-CalendarGrid/internal/integrations/crmpayload"
	buildDayGridUC "github.com/m04kA/SMC-CalendarGrid/internal/usecase/build_day_grid"
	resolveDropUC "github.com/m04kA/SMC-CalendarGrid/internal/usecase/resolve_drop"
	"github.com/m04kA/SMC-CalendarGrid/pkg/logger"
	"github.com/m04kA/SMC-CalendarGrid/pkg/metrics"
)

func main() {
	var (
		configPath       = flag.String("config", "config.toml", "path to config file")
		appointmentsPath = flag.String("appointments", "", "path to CRM appointments JSON (empty - no appointments)")
		dateFlag         = flag.String("date", "", "day to render, YYYY-MM-DD (default: today)")
		staffFlag        = flag.String("staff", "", "staff id of the column (empty - shared column)")
		dropY            = flag.Float64("drop-y", math.NaN(), "resolve a drop at this pixel offset instead of building the grid")
		appointmentFlag  = flag.String("appointment", "", "id of the appointment being moved (with -drop-y)")
		durationFlag     = flag.Int("duration", 0, "duration of a new appointment in minutes (with -drop-y)")
	)
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CalendarGrid...")
	log.Info("Configuration loaded from %s", *configPath)

	settings, err := cfg.Calendar.Settings()
	if err != nil {
		log.Fatal("Invalid calendar settings: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled, textfile: %s", cfg.Metrics.TextfilePath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	day, err := parseDay(*dateFlag)
	if err != nil {
		log.Fatal("Invalid -date: %v", err)
	}

	staffID, err := parseOptionalUUID(*staffFlag)
	if err != nil {
		log.Fatal("Invalid -staff: %v", err)
	}

	// Загружаем записи дня
	appointments, err := loadAppointments(*appointmentsPath, day, log)
	if err != nil {
		log.Fatal("Failed to load appointments: %v", err)
	}
	log.Info("Loaded %d appointments for %s", len(appointments), day.Format(time.DateOnly))

	var result interface{}
	if !math.IsNaN(*dropY) {
		appointmentID, err := parseOptionalUUID(*appointmentFlag)
		if err != nil {
			log.Fatal("Invalid -appointment: %v", err)
		}

		useCase := resolveDropUC.NewUseCase(settings, dropMetrics(metricsCollector), log)
		resp, err := useCase.Execute(ctx, &resolveDropUC.Request{
			AppointmentID:   appointmentID,
			DurationMinutes: *durationFlag,
			StaffID:         staffID,
			PixelY:          *dropY,
			Date:            day,
			Appointments:    appointments,
		})
		switch {
		case errors.Is(err, resolveDropUC.ErrNoValidPlacement):
			log.Warn("Drop ignored: %v", err)
		case err != nil:
			log.Error("Failed to resolve drop: %v", err)
		}
		if err != nil {
			flushMetrics(metricsCollector, cfg.Metrics.TextfilePath, log)
			log.Close()
			os.Exit(2)
		}
		result = resp
	} else {
		useCase := buildDayGridUC.NewUseCase(settings, gridMetrics(metricsCollector), log)
		resp, err := useCase.Execute(ctx, &buildDayGridUC.Request{
			StaffID:      staffID,
			Date:         day,
			Appointments: appointments,
		})
		if err != nil {
			log.Error("Failed to build day grid: %v", err)
			flushMetrics(metricsCollector, cfg.Metrics.TextfilePath, log)
			log.Close()
			os.Exit(2)
		}
		result = resp
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		log.Error("Failed to write result: %v", err)
	}

	flushMetrics(metricsCollector, cfg.Metrics.TextfilePath, log)
	log.Info("Done")
}

func loadAppointments(path string, day time.Time, log *logger.Logger) ([]domain.Appointment, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return crmpayload.NewAdapter(time.Local, log).DecodeDay(f, day)
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation(time.DateOnly, s, time.Local)
}

func parseOptionalUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(s)
}

// Интерфейсы use case не должны получать typed nil
func gridMetrics(m *metrics.Metrics) buildDayGridUC.Metrics {
	if m == nil {
		return nil
	}
	return m
}

func dropMetrics(m *metrics.Metrics) resolveDropUC.Metrics {
	if m == nil {
		return nil
	}
	return m
}

func flushMetrics(m *metrics.Metrics, path string, log *logger.Logger) {
	if m == nil || path == "" {
		return
	}
	if err := m.WriteTextfile(path); err != nil {
		log.Error("Failed to write metrics to %s: %v", path, err)
		return
	}
	log.Info("Metrics written to %s", path)
}
