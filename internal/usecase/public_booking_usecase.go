package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"
	"clinic-booking/pkg/phone"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSlotTaken = errors.New("slot is no longer available")

type PublicBookingUsecase interface {
	GetBookingPage(ctx context.Context, slug string) (*dto.BookingPageResponse, error)
	GetClinic(ctx context.Context, slug string) (*dto.ClinicResponse, error)
	CreateBooking(ctx context.Context, slug string, req *dto.BookingForm) (*dto.BookingResponse, error)
}

type publicBookingUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	clinicRepo          repository.ClinicRepository
	userRepo            repository.UserRepository
	patientRepo         repository.PatientRepository
	appointmentRepo     repository.AppointmentRepository
	auditService        service.AuditService
	notificationService service.NotificationService
}

func NewPublicBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	notificationService service.NotificationService,
) PublicBookingUsecase {
	return &publicBookingUsecase{
		db:                  db,
		log:                 log,
		clinicRepo:          clinicRepo,
		userRepo:            userRepo,
		patientRepo:         patientRepo,
		appointmentRepo:     appointmentRepo,
		auditService:        auditService,
		notificationService: notificationService,
	}
}

// GetBookingPage lists the active doctors of a clinic whose subscription is active
func (u *publicBookingUsecase) GetBookingPage(ctx context.Context, slug string) (*dto.BookingPageResponse, error) {
	clinic, err := u.clinicRepo.FindActiveBySlug(ctx, u.db, slug)
	if err != nil {
		u.log.Warnf("Failed to find clinic %q: %+v", slug, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	doctors, err := u.userRepo.FindActiveDoctorsByClinic(ctx, u.db, clinic.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctors for clinic %d: %+v", clinic.ID, err)
		return nil, err
	}

	return &dto.BookingPageResponse{
		Clinic:  *converter.ClinicToResponse(clinic),
		Doctors: converter.DoctorsToResponses(doctors),
	}, nil
}

func (u *publicBookingUsecase) GetClinic(ctx context.Context, slug string) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindBySlug(ctx, u.db, slug)
	if err != nil {
		u.log.Warnf("Failed to find clinic %q: %+v", slug, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}
	return converter.ClinicToResponse(clinic), nil
}

// CreateBooking books a slot for a patient identified by phone number.
//
// Flow:
// 1. Resolve clinic, date and doctor
// 2. Find or create the patient, inside the transaction
// 3. Re-check the slot, then insert; the partial unique index decides races
// 4. Audit, commit, then notify
func (u *publicBookingUsecase) CreateBooking(ctx context.Context, slug string, req *dto.BookingForm) (*dto.BookingResponse, error) {
	clinic, err := u.clinicRepo.FindBySlug(ctx, u.db, slug)
	if err != nil {
		u.log.Warnf("Failed to find clinic %q: %+v", slug, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	slot, err := parseSlotTime(req.Time)
	if err != nil {
		return nil, err
	}

	doctor, err := u.userRepo.FindByID(ctx, u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() || !doctor.IsActive || !doctor.BelongsTo(clinic.ID) {
		return nil, ErrDoctorNotFound
	}

	token, err := entity.NewCancelToken()
	if err != nil {
		u.log.Errorf("Failed to generate cancel token: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.findOrCreatePatient(ctx, tx, clinic.ID, req)
	if err != nil {
		return nil, err
	}

	existing, err := u.appointmentRepo.FindConfirmedBySlot(ctx, tx, doctor.ID, day, slot)
	if err != nil {
		u.log.Warnf("Failed to check slot %s %s for doctor %d: %+v", req.Date, slot, doctor.ID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotTaken
	}

	appointment := &entity.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		ClinicID:    clinic.ID,
		Date:        day,
		Time:        slot,
		Reason:      strings.TrimSpace(req.Reason),
		Status:      entity.AppointmentStatusConfirmed,
		CancelToken: token,
	}

	if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
		if isDuplicateKeyError(err, entity.ConfirmedSlotConstraint) {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAppointmentCreate(ctx, tx, appointment); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, entity.ConfirmedSlotConstraint) {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Patient = patient
	appointment.Doctor = doctor
	appointment.Clinic = clinic

	u.notificationService.SendBookingConfirmation(ctx, appointment)

	u.log.WithFields(logrus.Fields{
		"appointment_id": appointment.ID,
		"clinic_id":      clinic.ID,
		"doctor_id":      doctor.ID,
		"date":           req.Date,
		"time":           slot,
	}).Info("Appointment booked")

	return converter.AppointmentToBookingResponse(appointment), nil
}

// findOrCreatePatient looks the phone up across all clinics; a new patient is
// attached to the clinic it first booked with.
func (u *publicBookingUsecase) findOrCreatePatient(ctx context.Context, tx *gorm.DB, clinicID int, req *dto.BookingForm) (*entity.Patient, error) {
	number := phone.Canonical(req.PatientPhone)

	patient, err := u.patientRepo.FindByPhone(ctx, tx, number)
	if err != nil {
		u.log.Warnf("Failed to find patient by phone: %+v", err)
		return nil, err
	}
	if patient != nil {
		return patient, nil
	}

	patient = &entity.Patient{
		Name:     strings.TrimSpace(req.PatientName),
		Phone:    number,
		Email:    strings.TrimSpace(req.PatientEmail),
		ClinicID: clinicID,
	}
	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return patient, nil
}
