package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int64) (*entity.Doctor, error)
	FindAllActive(db *gorm.DB, page, limit int) ([]entity.Doctor, int64, error)
	FindActiveOrderedByID(db *gorm.DB) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Deactivate(db *gorm.DB, id int64) (int64, error)
	Delete(db *gorm.DB, id int64) (int64, error)
}
