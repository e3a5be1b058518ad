package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

// AddressToResponse converts an Address value to AddressResponse DTO
func AddressToResponse(address entity.Address) dto.AddressResponse {
	return dto.AddressResponse{
		Street:       address.Street,
		Neighborhood: address.Neighborhood,
		PostalCode:   address.PostalCode,
		City:         address.City,
		State:        address.State,
		Number:       address.Number,
		Complement:   address.Complement,
	}
}

// AddressFromRequest converts an AddressRequest DTO to an Address value
func AddressFromRequest(req dto.AddressRequest) entity.Address {
	return entity.Address{
		Street:       req.Street,
		Neighborhood: req.Neighborhood,
		PostalCode:   req.PostalCode,
		City:         req.City,
		State:        req.State,
		Number:       req.Number,
		Complement:   req.Complement,
	}
}
