package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPatientUsecase struct {
	createResp *dto.PatientResponse
	createErr  error
	getResp    *dto.PatientResponse
	getErr     error
	listResp   []dto.PatientResponse
	listTotal  int64
	listErr    error
	updateResp *dto.PatientResponse
	updateErr  error
	deleteErr  error
}

func (s *stubPatientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubPatientUsecase) GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	return s.getResp, s.getErr
}

func (s *stubPatientUsecase) GetAllPatients(ctx context.Context, page, limit int) ([]dto.PatientResponse, int64, error) {
	return s.listResp, s.listTotal, s.listErr
}

func (s *stubPatientUsecase) UpdatePatient(ctx context.Context, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	return s.updateResp, s.updateErr
}

func (s *stubPatientUsecase) DeletePatient(ctx context.Context, id int64) error {
	return s.deleteErr
}

func validCreatePatientBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(dto.CreatePatientRequest{
		Name:     "Ana Souza",
		Email:    "ana.souza@example.com",
		Phone:    "11988887777",
		Document: "12345678900",
		Address: dto.AddressRequest{
			Street:       "Rua das Flores",
			Neighborhood: "Centro",
			PostalCode:   "01000-000",
			City:         "Sao Paulo",
			State:        "SP",
		},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestCreatePatient_Success(t *testing.T) {
	stub := &stubPatientUsecase{createResp: &dto.PatientResponse{ID: 1, Name: "Ana Souza"}}
	h := NewPatientHandler(stub, validator.NewValidator())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/patients", validCreatePatientBody(t))
	w := httptest.NewRecorder()
	h.CreatePatient(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreatePatient_DuplicateEmail(t *testing.T) {
	stub := &stubPatientUsecase{createErr: usecase.ErrPatientEmailExists}
	h := NewPatientHandler(stub, validator.NewValidator())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/patients", validCreatePatientBody(t))
	w := httptest.NewRecorder()
	h.CreatePatient(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreatePatient_MissingAddressFields(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{}, validator.NewValidator())

	body, err := json.Marshal(map[string]interface{}{
		"name":     "Ana Souza",
		"email":    "ana.souza@example.com",
		"phone":    "11988887777",
		"document": "12345678900",
		"address":  map[string]string{"street": "Rua das Flores"},
	})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/patients", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	h.CreatePatient(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPatient_SoftDeletedStillRetrievable(t *testing.T) {
	inactive := false
	stub := &stubPatientUsecase{getResp: &dto.PatientResponse{ID: 7, Name: "Ana Souza", Active: &inactive}}
	h := NewPatientHandler(stub, validator.NewValidator())

	r := httptest.NewRequest(http.MethodGet, "/api/v1/patients/7", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "7"})
	w := httptest.NewRecorder()
	h.GetPatient(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.PatientResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data.Active)
	assert.False(t, *resp.Data.Active)
}

func TestGetPatient_NotFound(t *testing.T) {
	stub := &stubPatientUsecase{getErr: usecase.ErrPatientNotFound}
	h := NewPatientHandler(stub, validator.NewValidator())

	r := httptest.NewRequest(http.MethodGet, "/api/v1/patients/99", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "99"})
	w := httptest.NewRecorder()
	h.GetPatient(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPatient_InvalidID(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{}, validator.NewValidator())

	r := httptest.NewRequest(http.MethodGet, "/api/v1/patients/abc", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "abc"})
	w := httptest.NewRecorder()
	h.GetPatient(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllPatients_PaginationMeta(t *testing.T) {
	stub := &stubPatientUsecase{
		listResp:  []dto.PatientResponse{{ID: 1}, {ID: 2}},
		listTotal: 41,
	}
	h := NewPatientHandler(stub, validator.NewValidator())

	r := httptest.NewRequest(http.MethodGet, "/api/v1/patients?page=2&limit=20", nil)
	w := httptest.NewRecorder()
	h.GetAllPatients(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Meta struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 20, resp.Meta.Limit)
	assert.Equal(t, int64(41), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestUpdatePatient_RequiresID(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{}, validator.NewValidator())

	body, err := json.Marshal(map[string]string{"name": "New Name"})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPut, "/api/v1/patients", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	h.UpdatePatient(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeletePatient_NotFound(t *testing.T) {
	stub := &stubPatientUsecase{deleteErr: usecase.ErrPatientNotFound}
	h := NewPatientHandler(stub, validator.NewValidator())

	r := httptest.NewRequest(http.MethodDelete, "/api/v1/patients/5", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "5"})
	w := httptest.NewRecorder()
	h.DeletePatient(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
