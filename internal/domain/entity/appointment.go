package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle status of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusOpen       AppointmentStatus = "open"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusClosed     AppointmentStatus = "closed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
)

// CancelReason is the enumerated reason attached to a cancellation.
type CancelReason string

const (
	CancelReasonPatient CancelReason = "patient_cancelled"
	CancelReasonDoctor  CancelReason = "doctor_cancelled"
	CancelReasonOther   CancelReason = "other"
)

// IsValid reports whether the reason is one of the recognized values.
func (r CancelReason) IsValid() bool {
	switch r {
	case CancelReasonPatient, CancelReasonDoctor, CancelReasonOther:
		return true
	}
	return false
}

// Appointment links a patient and a doctor at a scheduled date-time.
// Rows are created only through the booking flow and are never removed;
// cancellation sets Status to cancelled and records the reason.
type Appointment struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    int64             `gorm:"not null;index" json:"patient_id"`
	DoctorID     int64             `gorm:"not null;index" json:"doctor_id"`
	ScheduledAt  time.Time         `gorm:"not null;index" json:"scheduled_at"`
	Status       AppointmentStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	CancelReason *CancelReason     `gorm:"type:varchar(30)" json:"cancel_reason,omitempty"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsFinalized checks if the appointment can no longer be cancelled.
func (a *Appointment) IsFinalized() bool {
	return a.Status == AppointmentStatusCancelled || a.Status == AppointmentStatusClosed
}
