package service

import (
	"context"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes audit entries inside the caller's transaction so an
// entry exists exactly when the change it describes was committed.
type AuditService interface {
	LogAppointmentCreate(ctx context.Context, tx *gorm.DB, appointment *entity.Appointment) error
	LogAppointmentCancel(ctx context.Context, tx *gorm.DB, appointment *entity.Appointment, previous entity.AppointmentStatus) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogAppointmentCreate(ctx context.Context, tx *gorm.DB, appointment *entity.Appointment) error {
	metadata := appointmentMetadata(appointment)
	metadata["old_status"] = nil
	metadata["new_status"] = appointment.Status

	return s.write(ctx, tx, appointment.ClinicID, entity.AuditActionAppointmentCreate, metadata)
}

func (s *auditService) LogAppointmentCancel(ctx context.Context, tx *gorm.DB, appointment *entity.Appointment, previous entity.AppointmentStatus) error {
	metadata := appointmentMetadata(appointment)
	metadata["old_status"] = previous
	metadata["new_status"] = entity.AppointmentStatusCancelled

	return s.write(ctx, tx, appointment.ClinicID, entity.AuditActionAppointmentCancel, metadata)
}

func (s *auditService) write(ctx context.Context, tx *gorm.DB, clinicID int, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		ClinicID: &clinicID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

func appointmentMetadata(appointment *entity.Appointment) entity.JSON {
	return entity.JSON{
		"entity":     "appointment",
		"entity_id":  appointment.ID,
		"doctor_id":  appointment.DoctorID,
		"patient_id": appointment.PatientID,
		"date":       appointment.Date.Format(entity.DateLayout),
		"time":       appointment.Time,
	}
}
