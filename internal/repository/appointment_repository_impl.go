package repository

import (
	"errors"
	"time"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Doctor").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// ExistsForPatientOnDate reports whether the patient already holds a
// non-cancelled appointment on the calendar day containing `day`.
func (r *appointmentRepository) ExistsForPatientOnDate(db *gorm.DB, patientID int64, day time.Time) (bool, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("patient_id = ? AND scheduled_at >= ? AND scheduled_at < ? AND status != ?",
			patientID, dayStart, dayEnd, entity.AppointmentStatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsForDoctorAt reports whether the doctor already holds a
// non-cancelled appointment at the exact date-time.
func (r *appointmentRepository) ExistsForDoctorAt(db *gorm.DB, doctorID int64, at time.Time) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND scheduled_at = ? AND status != ?",
			doctorID, at, entity.AppointmentStatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindBookedDoctorIDsAt returns the ids of doctors holding a
// non-cancelled appointment at the exact date-time.
func (r *appointmentRepository) FindBookedDoctorIDsAt(db *gorm.DB, at time.Time) ([]int64, error) {
	var ids []int64
	err := db.Model(&entity.Appointment{}).
		Where("scheduled_at = ? AND status != ?", at, entity.AppointmentStatusCancelled).
		Pluck("doctor_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Cancel atomically cancels an appointment ONLY if it is not already
// finalized. Returns affected rows: 1 = success, 0 = already cancelled
// or closed (prevents double-cancel race).
func (r *appointmentRepository) Cancel(db *gorm.DB, id uuid.UUID, reason entity.CancelReason) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status NOT IN ?", id,
			[]entity.AppointmentStatus{entity.AppointmentStatusCancelled, entity.AppointmentStatusClosed}).
		Updates(map[string]interface{}{
			"status":        entity.AppointmentStatusCancelled,
			"cancel_reason": reason,
		})
	return result.RowsAffected, result.Error
}
