// Package config loads config.toml.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-CalendarGrid/internal/domain"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация приложения
type Config struct {
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Calendar CalendarConfig `toml:"calendar"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled      bool   `toml:"enabled"`
	ServiceName  string `toml:"service_name" validate:"required_if=Enabled true"`
	TextfilePath string `toml:"textfile_path"`
}

// CalendarConfig настройки календарной сетки.
// Единственное место, где задаются рабочие часы по умолчанию.
type CalendarConfig struct {
	WorkDayStart        string  `toml:"work_day_start" validate:"required,datetime=15:04"`
	WorkDayEnd          string  `toml:"work_day_end" validate:"required,datetime=15:04"`
	ScaleStart          string  `toml:"scale_start" validate:"omitempty,datetime=15:04"`
	ScaleEnd            string  `toml:"scale_end" validate:"omitempty,datetime=15:04"`
	SlotDurationMinutes int     `toml:"slot_duration_minutes" validate:"min=5,max=480"`
	SnapMinutes         int     `toml:"snap_minutes" validate:"oneof=5 10 15 20 30 60"`
	PixelsPerHour       float64 `toml:"pixels_per_hour" validate:"gte=1,lte=1000"`
	MajorHoursOnly      bool    `toml:"major_hours_only"`

	// Переопределения по дням недели: [calendar.working_hours.saturday]
	WorkingHours map[string]DayHoursConfig `toml:"working_hours" validate:"omitempty,dive"`
}

// DayHoursConfig рабочее время одного дня недели
type DayHoursConfig struct {
	Closed bool   `toml:"closed"`
	Start  string `toml:"start" validate:"omitempty,datetime=15:04"`
	End    string `toml:"end" validate:"omitempty,datetime=15:04"`
}

// Default returns configuration with default values
func Default() *Config {
	return &Config{
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			ServiceName: "calendar_grid",
		},
		Calendar: CalendarConfig{
			WorkDayStart:        "09:00",
			WorkDayEnd:          "18:00",
			SlotDurationMinutes: 15,
			SnapMinutes:         15,
			PixelsPerHour:       60,
		},
	}
}

// Load загружает конфигурацию из TOML-файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse декодирует конфигурацию из строки (для тестов и встроенных конфигов)
func Parse(data string) (*Config, error) {
	cfg := Default()

	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения и согласованность настроек
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if _, err := c.Calendar.Settings(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Settings строит доменные настройки календаря.
// Шкала по умолчанию совпадает с рабочими часами.
func (c CalendarConfig) Settings() (domain.CalendarSettings, error) {
	working, err := domain.ParseTimeRange(c.WorkDayStart, c.WorkDayEnd)
	if err != nil {
		return domain.CalendarSettings{}, fmt.Errorf("working hours: %w", err)
	}

	scale := working
	if c.ScaleStart != "" || c.ScaleEnd != "" {
		start, end := c.ScaleStart, c.ScaleEnd
		if start == "" {
			start = c.WorkDayStart
		}
		if end == "" {
			end = c.WorkDayEnd
		}
		scale, err = domain.ParseTimeRange(start, end)
		if err != nil {
			return domain.CalendarSettings{}, fmt.Errorf("scale: %w", err)
		}
	}

	weekly, err := c.weeklySchedule()
	if err != nil {
		return domain.CalendarSettings{}, err
	}

	return domain.CalendarSettings{
		WorkingHours:        domain.WorkingHours{Range: working},
		Weekly:              weekly,
		Scale:               scale,
		SlotDurationMinutes: c.SlotDurationMinutes,
		SnapMinutes:         c.SnapMinutes,
		MajorHoursOnly:      c.MajorHoursOnly,
		Geometry: domain.GridGeometry{
			DayStart:      scale.Start,
			PixelsPerHour: c.PixelsPerHour,
		},
	}, nil
}

// weeklySchedule строит расписание по дням недели; nil, если переопределений нет
func (c CalendarConfig) weeklySchedule() (domain.WeeklySchedule, error) {
	if len(c.WorkingHours) == 0 {
		return nil, nil
	}

	weekly := make(domain.WeeklySchedule, len(c.WorkingHours))
	for name, day := range c.WorkingHours {
		weekday, err := parseWeekday(name)
		if err != nil {
			return nil, err
		}

		if day.Closed {
			weekly[weekday] = domain.ClosedDay
			continue
		}

		if day.Start == "" || day.End == "" {
			return nil, fmt.Errorf("working hours on %s: start and end are required unless closed", name)
		}
		r, err := domain.ParseTimeRange(day.Start, day.End)
		if err != nil {
			return nil, fmt.Errorf("working hours on %s: %w", name, err)
		}
		weekly[weekday] = domain.OpenDay(r)
	}

	return weekly, nil
}

// parseWeekday разбирает название дня недели (monday..sunday)
func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(name) {
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	case "sunday":
		return time.Sunday, nil
	default:
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
}
