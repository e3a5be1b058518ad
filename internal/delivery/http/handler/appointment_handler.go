package handler

import (
	"encoding/json"
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/service"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
	"clinic-booking-api/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Schedule(r.Context(), &req)
	if err != nil {
		switch err {
		case service.ErrPastAppointment:
			response.Error(w, http.StatusBadRequest, "Appointment must be in the future", nil)
		case service.ErrOutsideOperatingHours:
			response.Error(w, http.StatusBadRequest, "Outside clinic operating hours", nil)
		case usecase.ErrPatientNotBookable:
			response.Error(w, http.StatusBadRequest, "Patient not found or inactive", nil)
		case usecase.ErrPatientUnavailable:
			response.Error(w, http.StatusConflict, "Patient already has an appointment that day", nil)
		case usecase.ErrDoctorUnavailable:
			response.Error(w, http.StatusConflict, "Doctor not available at that time", nil)
		case service.ErrNoDoctorAvailable:
			response.Error(w, http.StatusConflict, "No doctor available", nil)
		default:
			response.InternalServerError(w, "Failed to schedule appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment scheduled successfully", appointment)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CancelAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	err := h.appointmentUsecase.Cancel(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidCancelReason:
			response.Error(w, http.StatusBadRequest, "Invalid cancellation reason", nil)
		case usecase.ErrAppointmentFinalized:
			response.Error(w, http.StatusConflict, "Appointment already finalized", nil)
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.NoContent(w)
}
