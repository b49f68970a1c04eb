package crmpayload

import "time"

// AppointmentPayload запись в формате CRM.
// Поддерживает оба формата связей: старый единичный (employeeId, petId, serviceId)
// и новый списочный (staffIds, petIds, serviceIds).
type AppointmentPayload struct {
	ID         string     `json:"id" validate:"required,uuid"`
	ClientID   string     `json:"clientId" validate:"required,uuid"`
	EmployeeID string     `json:"employeeId,omitempty" validate:"omitempty,uuid"` // legacy
	StaffIDs   []string   `json:"staffIds,omitempty" validate:"dive,uuid"`
	PetID      string     `json:"petId,omitempty" validate:"omitempty,uuid"` // legacy
	PetIDs     []string   `json:"petIds,omitempty" validate:"dive,uuid"`
	ServiceID  string     `json:"serviceId,omitempty" validate:"omitempty,uuid"` // legacy
	ServiceIDs []string   `json:"serviceIds,omitempty" validate:"dive,uuid"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	Duration   int        `json:"duration,omitempty" validate:"gte=0"` // в минутах, если endTime не задан
	Status     string     `json:"status" validate:"required"`
}

// Envelope the list form exported by the CRM
type Envelope struct {
	Appointments []AppointmentPayload `json:"appointments"`
}
