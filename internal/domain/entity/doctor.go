package entity

import "time"

// Specialty is the enumerated medical specialization of a doctor.
type Specialty string

const (
	SpecialtyOrthopedics Specialty = "orthopedics"
	SpecialtyCardiology  Specialty = "cardiology"
	SpecialtyGynecology  Specialty = "gynecology"
	SpecialtyDermatology Specialty = "dermatology"
)

// IsValid reports whether the specialty is one of the recognized values.
func (s Specialty) IsValid() bool {
	switch s {
	case SpecialtyOrthopedics, SpecialtyCardiology, SpecialtyGynecology, SpecialtyDermatology:
		return true
	}
	return false
}

// Doctor represents a clinic doctor. Doctors support two destruction
// paths: logical delete (Active=false) and physical row removal.
type Doctor struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	CRM       string    `gorm:"column:crm;type:varchar(20);uniqueIndex;not null" json:"crm"`
	Specialty Specialty `gorm:"type:varchar(50);not null;index" json:"specialty"`
	Address   Address   `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Active    *bool     `gorm:"not null;default:true;index" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsActive reports whether the doctor is logically present.
func (d *Doctor) IsActive() bool {
	return d.Active != nil && *d.Active
}
