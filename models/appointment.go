package models

import "time"

type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// AllowTransition declares the appointment status graph. The in_progress
// and completed states are administrator territory and are never reached
// from the customer-facing handlers.
var AllowTransition = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled:  {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether from -> to is an allowed status change.
func CanTransition(from, to AppointmentStatus) bool {
	if from == to {
		return true
	}
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	CustomerID      uint              `gorm:"index;not null" json:"customer_id"`
	VehicleID       uint              `gorm:"index;not null" json:"vehicle_id"`
	ServiceID       uint              `gorm:"index;not null" json:"service_id"`
	AppointmentDate string            `gorm:"size:10;index;not null" json:"appointment_date"` // 2006-01-02
	AppointmentTime string            `gorm:"size:5;not null" json:"appointment_time"`        // 15:04
	Status          AppointmentStatus `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes           string            `json:"notes"`
	CreatedAt       time.Time         `json:"created_at"`
}

// CanEdit reports whether fields may still be overwritten in place.
func (a *Appointment) CanEdit() bool {
	return a.Status == StatusScheduled
}

// CanCancel reports whether the appointment may move to cancelled.
func (a *Appointment) CanCancel() bool {
	return CanTransition(a.Status, StatusCancelled) && a.Status != StatusCancelled
}
