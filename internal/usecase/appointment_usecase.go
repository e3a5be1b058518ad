package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrPatientNotBookable   = errors.New("patient not found or inactive")
	ErrPatientUnavailable   = errors.New("patient already has an appointment that day")
	ErrDoctorUnavailable    = errors.New("doctor not available at that time")
	ErrInvalidCancelReason  = errors.New("invalid cancellation reason")
	ErrAppointmentFinalized = errors.New("appointment already finalized")
)

type AppointmentUsecase interface {
	Schedule(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, req *dto.CancelAppointmentRequest) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

// Schedule books a new appointment after running every booking rule.
//
// Flow:
// 1. Time rules: start must be in the future and inside the operating window
// 2. Patient must exist and be active
// 3. Patient must have no other non-cancelled appointment that calendar day
// 4. Requested doctor must exist, be active and be free at the slot;
//    without a requested doctor the first free active doctor (ascending id) is assigned
// 5. Insert with status=open inside the transaction; partial unique
//    indexes on (doctor_id, scheduled_at) and (patient_id, day) are the
//    backstop against racing bookings
func (u *appointmentUsecase) Schedule(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := service.ValidateSchedulingTime(time.Now(), req.ScheduledAt); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil || !patient.IsActive() {
		return nil, ErrPatientNotBookable
	}

	busy, err := u.appointmentRepo.ExistsForPatientOnDate(tx, req.PatientID, req.ScheduledAt)
	if err != nil {
		u.log.Warnf("Failed to check patient availability: %+v", err)
		return nil, err
	}
	if busy {
		return nil, ErrPatientUnavailable
	}

	doctor, err := u.resolveDoctor(tx, req)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		ScheduledAt: req.ScheduledAt,
		Status:      entity.AppointmentStatusOpen,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		// Concurrent booking lost the race to the storage backstop
		if isDuplicateKeyError(err, "doctor_slot") {
			return nil, ErrDoctorUnavailable
		}
		if isDuplicateKeyError(err, "patient_day") {
			return nil, ErrPatientUnavailable
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Reload with patient and doctor info for the response
	fullAppointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || fullAppointment == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment booked: id=%s, patient=%d, doctor=%d, at=%s",
		appointment.ID, patient.ID, doctor.ID, req.ScheduledAt.Format(time.RFC3339))
	return converter.AppointmentToResponse(fullAppointment), nil
}

// resolveDoctor validates an explicitly requested doctor, or picks the
// first free active doctor when none was requested.
func (u *appointmentUsecase) resolveDoctor(tx *gorm.DB, req *dto.CreateAppointmentRequest) (*entity.Doctor, error) {
	if req.DoctorID != nil {
		doctor, err := u.doctorRepo.FindByID(tx, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %d: %+v", *req.DoctorID, err)
			return nil, err
		}
		if doctor == nil || !doctor.IsActive() {
			return nil, ErrDoctorUnavailable
		}

		taken, err := u.appointmentRepo.ExistsForDoctorAt(tx, doctor.ID, req.ScheduledAt)
		if err != nil {
			u.log.Warnf("Failed to check doctor availability: %+v", err)
			return nil, err
		}
		if taken {
			return nil, ErrDoctorUnavailable
		}
		return doctor, nil
	}

	candidates, err := u.doctorRepo.FindActiveOrderedByID(tx)
	if err != nil {
		u.log.Warnf("Failed to list active doctors: %+v", err)
		return nil, err
	}

	bookedIDs, err := u.appointmentRepo.FindBookedDoctorIDsAt(tx, req.ScheduledAt)
	if err != nil {
		u.log.Warnf("Failed to list booked doctors: %+v", err)
		return nil, err
	}

	return service.SelectDoctor(candidates, bookedIDs)
}

// Cancel marks an appointment cancelled with the given reason.
//
// Flow:
// 1. Reason must be one of the recognized enumerated values
// 2. Appointment must exist
// 3. Appointment must not already be cancelled or closed; enforced by a
//    conditional update so a double cancel cannot race
func (u *appointmentUsecase) Cancel(ctx context.Context, req *dto.CancelAppointmentRequest) error {
	reason := entity.CancelReason(req.Reason)
	if !reason.IsValid() {
		return ErrInvalidCancelReason
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	rows, err := u.appointmentRepo.Cancel(tx, req.AppointmentID, reason)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", req.AppointmentID, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentFinalized
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionAppointmentCancel, "appointment", appointment.ID.String(), string(appointment.Status), string(entity.AppointmentStatusCancelled)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Appointment cancelled: id=%s, reason=%s", req.AppointmentID, reason)
	return nil
}
