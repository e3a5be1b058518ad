package repository

import (
	"time"

	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	ExistsForPatientOnDate(db *gorm.DB, patientID int64, day time.Time) (bool, error)
	ExistsForDoctorAt(db *gorm.DB, doctorID int64, at time.Time) (bool, error)
	FindBookedDoctorIDsAt(db *gorm.DB, at time.Time) ([]int64, error)
	Cancel(db *gorm.DB, id uuid.UUID, reason entity.CancelReason) (int64, error)
}
