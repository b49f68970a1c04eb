package domain

import "fmt"

// AppointmentStatus closed set of appointment statuses.
// Values come from ParseAppointmentStatus or the constants below; every
// mapping switches over all of them.
type AppointmentStatus uint8

const (
	// До check-in
	StatusPending AppointmentStatus = iota + 1
	StatusUnconfirmed
	StatusConfirmed
	StatusScheduled // синоним confirmed
	// После check-in
	StatusCheckedIn
	StatusInProgress // синоним checked-in
	StatusReadyForPickup
	// Финальные
	StatusCheckedOut
	StatusCompleted // синоним checked-out
	StatusFinished  // синоним checked-out
	StatusCancelled
	StatusNoShow
	// Вне цикла
	StatusWaitlisted
)

// AllStatuses in lifecycle order
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusUnconfirmed,
	StatusConfirmed,
	StatusScheduled,
	StatusCheckedIn,
	StatusInProgress,
	StatusReadyForPickup,
	StatusCheckedOut,
	StatusCompleted,
	StatusFinished,
	StatusCancelled,
	StatusNoShow,
	StatusWaitlisted,
}

// StatusPhase lifecycle phase of a status
type StatusPhase uint8

const (
	PhasePreCheckIn StatusPhase = iota + 1
	PhaseInService
	PhaseFinal
	PhaseOffCycle
)

func (p StatusPhase) String() string {
	switch p {
	case PhasePreCheckIn:
		return "pre-check-in"
	case PhaseInService:
		return "in-service"
	case PhaseFinal:
		return "final"
	case PhaseOffCycle:
		return "off-cycle"
	}
	panic(fmt.Sprintf("domain: unhandled status phase %d", uint8(p)))
}

// ParseAppointmentStatus разбирает строковое значение статуса из CRM
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	for _, status := range AllStatuses {
		if status.String() == s {
			return status, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// String returns the wire value of the status
func (s AppointmentStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusUnconfirmed:
		return "unconfirmed"
	case StatusConfirmed:
		return "confirmed"
	case StatusScheduled:
		return "scheduled"
	case StatusCheckedIn:
		return "checked-in"
	case StatusInProgress:
		return "in-progress"
	case StatusReadyForPickup:
		return "ready-for-pickup"
	case StatusCheckedOut:
		return "checked-out"
	case StatusCompleted:
		return "completed"
	case StatusFinished:
		return "finished"
	case StatusCancelled:
		return "cancelled"
	case StatusNoShow:
		return "no-show"
	case StatusWaitlisted:
		return "waitlisted"
	}
	panic(fmt.Sprintf("domain: unhandled appointment status %d", uint8(s)))
}

// Canonical сворачивает синонимы в основной статус
func (s AppointmentStatus) Canonical() AppointmentStatus {
	switch s {
	case StatusScheduled:
		return StatusConfirmed
	case StatusInProgress:
		return StatusCheckedIn
	case StatusCompleted, StatusFinished:
		return StatusCheckedOut
	default:
		return s
	}
}

// Phase returns the lifecycle phase
func (s AppointmentStatus) Phase() StatusPhase {
	switch s {
	case StatusPending, StatusUnconfirmed, StatusConfirmed, StatusScheduled:
		return PhasePreCheckIn
	case StatusCheckedIn, StatusInProgress, StatusReadyForPickup:
		return PhaseInService
	case StatusCheckedOut, StatusCompleted, StatusFinished, StatusCancelled, StatusNoShow:
		return PhaseFinal
	case StatusWaitlisted:
		return PhaseOffCycle
	}
	panic(fmt.Sprintf("domain: unhandled appointment status %d", uint8(s)))
}

// Color display color of the status badge
func (s AppointmentStatus) Color() string {
	switch s {
	case StatusPending, StatusUnconfirmed:
		return "#faad14"
	case StatusConfirmed, StatusScheduled:
		return "#52c41a"
	case StatusCheckedIn, StatusInProgress:
		return "#1890ff"
	case StatusReadyForPickup, StatusCheckedOut, StatusCompleted, StatusFinished:
		return "#722ed1"
	case StatusCancelled:
		return "#ff4d4f"
	case StatusNoShow:
		return "#ff7875"
	case StatusWaitlisted:
		return "#d9d9d9"
	}
	panic(fmt.Sprintf("domain: unhandled appointment status %d", uint8(s)))
}

// IsActive returns true if the appointment occupies its time on the grid
func (s AppointmentStatus) IsActive() bool {
	switch s {
	case StatusCancelled, StatusNoShow, StatusWaitlisted:
		return false
	default:
		return true
	}
}

// IsCancelled returns true if the appointment has been cancelled
func (s AppointmentStatus) IsCancelled() bool {
	return s == StatusCancelled
}

// MarshalText implements encoding.TextMarshaler
func (s AppointmentStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *AppointmentStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseAppointmentStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
