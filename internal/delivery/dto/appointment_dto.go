package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateAppointmentRequest books an appointment. DoctorID is optional;
// when absent the first free active doctor is assigned.
type CreateAppointmentRequest struct {
	PatientID   int64     `json:"patient_id" validate:"required,min=1"`
	DoctorID    *int64    `json:"doctor_id" validate:"omitempty,min=1"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

type CancelAppointmentRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
	Reason        string    `json:"reason" validate:"required,oneof=patient_cancelled doctor_cancelled other"`
}

// Response DTOs

type AppointmentResponse struct {
	ID           uuid.UUID        `json:"id"`
	PatientID    int64            `json:"patient_id"`
	DoctorID     int64            `json:"doctor_id"`
	ScheduledAt  time.Time        `json:"scheduled_at"`
	Status       string           `json:"status"`
	CancelReason string           `json:"cancel_reason,omitempty"`
	Patient      *PatientResponse `json:"patient,omitempty"`
	Doctor       *DoctorResponse  `json:"doctor,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
