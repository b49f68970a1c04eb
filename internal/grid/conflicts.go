package grid

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarGrid/internal/domain"
)

// Conflicts returns active appointments of staffID that overlap candidate,
// skipping the appointment identified by excludeID (the one being moved).
// staffID == uuid.Nil matches appointments of any staff member.
func Conflicts(candidate domain.TimeRange, staffID, excludeID uuid.UUID, appointments []domain.Appointment) []domain.Appointment {
	conflicts := make([]domain.Appointment, 0)

	for _, appointment := range appointments {
		if appointment.ID == excludeID || !appointment.IsActive() {
			continue
		}
		if staffID != uuid.Nil && !appointment.HasStaff(staffID) {
			continue
		}
		if appointment.Booking().Overlaps(candidate) {
			conflicts = append(conflicts, appointment)
		}
	}

	return conflicts
}
