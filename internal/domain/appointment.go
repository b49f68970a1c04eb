package domain

import "github.com/google/uuid"

// Appointment represents a grooming appointment placed on the day grid.
// Relations are always lists; index 0 is the primary staff member, pet or service.
type Appointment struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	StaffIDs   []uuid.UUID
	PetIDs     []uuid.UUID
	ServiceIDs []uuid.UUID
	Start      TimeOfDay
	End        TimeOfDay
	Status     AppointmentStatus
}

// PrimaryStaff returns the first assigned staff member
func (a *Appointment) PrimaryStaff() (uuid.UUID, bool) {
	if len(a.StaffIDs) == 0 {
		return uuid.Nil, false
	}
	return a.StaffIDs[0], true
}

// PrimaryPet returns the first pet of the appointment
func (a *Appointment) PrimaryPet() (uuid.UUID, bool) {
	if len(a.PetIDs) == 0 {
		return uuid.Nil, false
	}
	return a.PetIDs[0], true
}

// HasStaff returns true if staffID is assigned to the appointment
func (a *Appointment) HasStaff(staffID uuid.UUID) bool {
	for _, id := range a.StaffIDs {
		if id == staffID {
			return true
		}
	}
	return false
}

// Range returns the appointment interval
func (a *Appointment) Range() (TimeRange, error) {
	return NewTimeRange(a.Start, a.End)
}

// Booking returns the interval consumed by slot classification
func (a *Appointment) Booking() Booking {
	return Booking{Start: a.Start, End: a.End}
}

// IsActive returns true if the appointment blocks its time
func (a *Appointment) IsActive() bool {
	return a.Status.IsActive()
}
