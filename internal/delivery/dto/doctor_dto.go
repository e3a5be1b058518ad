package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	Name      string         `json:"name" validate:"required,min=2,max=255"`
	Email     string         `json:"email" validate:"required,email"`
	Phone     string         `json:"phone" validate:"required,min=8,max=20"`
	CRM       string         `json:"crm" validate:"required,min=4,max=20"`
	Specialty string         `json:"specialty" validate:"required,oneof=orthopedics cardiology gynecology dermatology"`
	Address   AddressRequest `json:"address" validate:"required"`
}

// UpdateDoctorRequest is a partial update addressed by id in the body.
// Email, CRM and specialty are immutable after creation.
type UpdateDoctorRequest struct {
	ID      int64           `json:"id" validate:"required,min=1"`
	Name    string          `json:"name" validate:"omitempty,min=2,max=255"`
	Phone   string          `json:"phone" validate:"omitempty,min=8,max=20"`
	Address *AddressRequest `json:"address" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	CRM       string          `json:"crm"`
	Specialty string          `json:"specialty"`
	Address   AddressResponse `json:"address"`
	Active    *bool           `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
