package converter

import (
	"testing"
	"time"

	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentToResponse_Nil(t *testing.T) {
	assert.Nil(t, AppointmentToResponse(nil))
}

func TestAppointmentToResponse_Basic(t *testing.T) {
	id := uuid.New()
	scheduledAt := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	appointment := &entity.Appointment{
		ID:          id,
		PatientID:   1,
		DoctorID:    2,
		ScheduledAt: scheduledAt,
		Status:      entity.AppointmentStatusOpen,
	}

	resp := AppointmentToResponse(appointment)
	require.NotNil(t, resp)
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, int64(1), resp.PatientID)
	assert.Equal(t, int64(2), resp.DoctorID)
	assert.Equal(t, scheduledAt, resp.ScheduledAt)
	assert.Equal(t, "open", resp.Status)
	assert.Empty(t, resp.CancelReason)
	assert.Nil(t, resp.Patient)
	assert.Nil(t, resp.Doctor)
}

func TestAppointmentToResponse_CancelReason(t *testing.T) {
	reason := entity.CancelReasonPatient
	appointment := &entity.Appointment{
		ID:           uuid.New(),
		Status:       entity.AppointmentStatusCancelled,
		CancelReason: &reason,
	}

	resp := AppointmentToResponse(appointment)
	require.NotNil(t, resp)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, "patient_cancelled", resp.CancelReason)
}

func TestAppointmentToResponse_PreloadedRelations(t *testing.T) {
	appointment := &entity.Appointment{
		ID:        uuid.New(),
		PatientID: 1,
		DoctorID:  2,
		Status:    entity.AppointmentStatusOpen,
		Patient:   entity.Patient{ID: 1, Name: "Ana Souza"},
		Doctor:    entity.Doctor{ID: 2, Name: "Dr. Lima", Specialty: entity.SpecialtyCardiology},
	}

	resp := AppointmentToResponse(appointment)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Patient)
	assert.Equal(t, "Ana Souza", resp.Patient.Name)
	require.NotNil(t, resp.Doctor)
	assert.Equal(t, "Dr. Lima", resp.Doctor.Name)
	assert.Equal(t, "cardiology", resp.Doctor.Specialty)
}
