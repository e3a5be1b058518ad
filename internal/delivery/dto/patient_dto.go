package dto

import "time"

// Request DTOs

type AddressRequest struct {
	Street       string `json:"street" validate:"required"`
	Neighborhood string `json:"neighborhood" validate:"required"`
	PostalCode   string `json:"postal_code" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Number       string `json:"number" validate:"omitempty"`
	Complement   string `json:"complement" validate:"omitempty"`
}

type CreatePatientRequest struct {
	Name     string         `json:"name" validate:"required,min=2,max=255"`
	Email    string         `json:"email" validate:"required,email"`
	Phone    string         `json:"phone" validate:"required,min=8,max=20"`
	Document string         `json:"document" validate:"required,min=5,max=20"`
	Address  AddressRequest `json:"address" validate:"required"`
}

// UpdatePatientRequest is a partial update addressed by id in the body.
// Email and document are immutable after creation.
type UpdatePatientRequest struct {
	ID      int64           `json:"id" validate:"required,min=1"`
	Name    string          `json:"name" validate:"omitempty,min=2,max=255"`
	Phone   string          `json:"phone" validate:"omitempty,min=8,max=20"`
	Address *AddressRequest `json:"address" validate:"omitempty"`
}

// Response DTOs

type AddressResponse struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	PostalCode   string `json:"postal_code"`
	City         string `json:"city"`
	State        string `json:"state"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
}

type PatientResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Document  string          `json:"document"`
	Address   AddressResponse `json:"address"`
	Active    *bool           `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
