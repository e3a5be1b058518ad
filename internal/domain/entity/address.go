package entity

// Address is an immutable postal address value embedded in Patient and
// Doctor rows. It has no identity of its own.
type Address struct {
	Street       string `gorm:"type:varchar(255);not null" json:"street"`
	Neighborhood string `gorm:"type:varchar(100);not null" json:"neighborhood"`
	PostalCode   string `gorm:"type:varchar(20);not null" json:"postal_code"`
	City         string `gorm:"type:varchar(100);not null" json:"city"`
	State        string `gorm:"type:varchar(50);not null" json:"state"`
	Number       string `gorm:"type:varchar(20)" json:"number,omitempty"`
	Complement   string `gorm:"type:varchar(100)" json:"complement,omitempty"`
}
