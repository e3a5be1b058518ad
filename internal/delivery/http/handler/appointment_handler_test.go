package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/service"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointmentUsecase struct {
	scheduleResp *dto.AppointmentResponse
	scheduleErr  error
	cancelErr    error

	scheduleReq *dto.CreateAppointmentRequest
	cancelReq   *dto.CancelAppointmentRequest
}

func (s *stubAppointmentUsecase) Schedule(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	s.scheduleReq = req
	return s.scheduleResp, s.scheduleErr
}

func (s *stubAppointmentUsecase) Cancel(ctx context.Context, req *dto.CancelAppointmentRequest) error {
	s.cancelReq = req
	return s.cancelErr
}

func newAppointmentHandler(stub *stubAppointmentUsecase) *AppointmentHandler {
	return NewAppointmentHandler(stub, validator.NewValidator())
}

func scheduleBody(t *testing.T, patientID int64, doctorID *int64) *bytes.Buffer {
	t.Helper()
	req := dto.CreateAppointmentRequest{
		PatientID:   patientID,
		DoctorID:    doctorID,
		ScheduledAt: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestScheduleAppointment_Success(t *testing.T) {
	appointmentID := uuid.New()
	stub := &stubAppointmentUsecase{
		scheduleResp: &dto.AppointmentResponse{
			ID:        appointmentID,
			PatientID: 1,
			DoctorID:  2,
			Status:    "open",
		},
	}
	h := newAppointmentHandler(stub)

	doctorID := int64(2)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", scheduleBody(t, 1, &doctorID))
	w := httptest.NewRecorder()
	h.ScheduleAppointment(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.scheduleReq)
	assert.Equal(t, int64(1), stub.scheduleReq.PatientID)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID     uuid.UUID `json:"id"`
			Status string    `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, appointmentID, resp.Data.ID)
	assert.Equal(t, "open", resp.Data.Status)
}

func TestScheduleAppointment_RuleViolations(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"past appointment", service.ErrPastAppointment, http.StatusBadRequest},
		{"outside operating hours", service.ErrOutsideOperatingHours, http.StatusBadRequest},
		{"patient not bookable", usecase.ErrPatientNotBookable, http.StatusBadRequest},
		{"patient already booked that day", usecase.ErrPatientUnavailable, http.StatusConflict},
		{"doctor not available", usecase.ErrDoctorUnavailable, http.StatusConflict},
		{"no doctor available", service.ErrNoDoctorAvailable, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAppointmentHandler(&stubAppointmentUsecase{scheduleErr: tt.err})

			r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", scheduleBody(t, 1, nil))
			w := httptest.NewRecorder()
			h.ScheduleAppointment(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp struct {
				Success bool `json:"success"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
		})
	}
}

func TestScheduleAppointment_InvalidBody(t *testing.T) {
	h := newAppointmentHandler(&stubAppointmentUsecase{})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	h.ScheduleAppointment(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleAppointment_MissingPatient(t *testing.T) {
	stub := &stubAppointmentUsecase{}
	h := newAppointmentHandler(stub)

	body, err := json.Marshal(map[string]interface{}{
		"scheduled_at": "2025-03-10T10:00:00Z",
	})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	h.ScheduleAppointment(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, stub.scheduleReq, "usecase must not be called on validation failure")
}

func cancelBody(t *testing.T, id uuid.UUID, reason string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(dto.CancelAppointmentRequest{
		AppointmentID: id,
		Reason:        reason,
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestCancelAppointment_Success(t *testing.T) {
	stub := &stubAppointmentUsecase{}
	h := newAppointmentHandler(stub)

	id := uuid.New()
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments", cancelBody(t, id, "patient_cancelled"))
	w := httptest.NewRecorder()
	h.CancelAppointment(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
	require.NotNil(t, stub.cancelReq)
	assert.Equal(t, id, stub.cancelReq.AppointmentID)
}

func TestCancelAppointment_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"invalid reason", usecase.ErrInvalidCancelReason, http.StatusBadRequest},
		{"already finalized", usecase.ErrAppointmentFinalized, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAppointmentHandler(&stubAppointmentUsecase{cancelErr: tt.err})

			r := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments", cancelBody(t, uuid.New(), "other"))
			w := httptest.NewRecorder()
			h.CancelAppointment(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCancelAppointment_UnknownReasonRejectedByValidator(t *testing.T) {
	stub := &stubAppointmentUsecase{}
	h := newAppointmentHandler(stub)

	r := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments", cancelBody(t, uuid.New(), "changed_my_mind"))
	w := httptest.NewRecorder()
	h.CancelAppointment(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, stub.cancelReq)
}
