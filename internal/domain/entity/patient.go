package entity

import "time"

// Patient represents a clinic patient. Deletion is always logical:
// Active is flipped to false and the row is never removed.
type Patient struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Document  string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"document"`
	Address   Address   `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Active    *bool     `gorm:"not null;default:true;index" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// IsActive reports whether the patient is logically present.
func (p *Patient) IsActive() bool {
	return p.Active != nil && *p.Active
}
