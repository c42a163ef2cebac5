package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentPast             = errors.New("appointment date has already passed")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
)

type CancellationUsecase interface {
	GetCancellation(ctx context.Context, token string) (*dto.CancellationResponse, error)
	ConfirmCancellation(ctx context.Context, token string) error
}

type cancellationUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	appointmentRepo     repository.AppointmentRepository
	auditService        service.AuditService
	notificationService service.NotificationService
	now                 func() time.Time
}

func NewCancellationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	notificationService service.NotificationService,
) CancellationUsecase {
	return &cancellationUsecase{
		db:                  db,
		log:                 log,
		appointmentRepo:     appointmentRepo,
		auditService:        auditService,
		notificationService: notificationService,
		now:                 time.Now,
	}
}

// GetCancellation resolves a cancel link for the confirmation prompt. Past and
// already cancelled appointments are reported instead of prompted.
func (u *cancellationUsecase) GetCancellation(ctx context.Context, token string) (*dto.CancellationResponse, error) {
	appointment, err := u.findByToken(ctx, u.db, token)
	if err != nil {
		return nil, err
	}

	if appointment.IsPast(u.now()) {
		return nil, ErrAppointmentPast
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentAlreadyCancelled
	}

	return converter.AppointmentToCancellationResponse(appointment), nil
}

// ConfirmCancellation cancels whatever the token resolves to. Cancelling twice
// succeeds both times.
func (u *cancellationUsecase) ConfirmCancellation(ctx context.Context, token string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findByToken(ctx, tx, token)
	if err != nil {
		return err
	}

	previous := appointment.Status
	if _, err := u.appointmentRepo.UpdateStatus(ctx, tx, appointment.ID, entity.AppointmentStatusCancelled); err != nil {
		u.log.Warnf("Failed to cancel appointment %d: %+v", appointment.ID, err)
		return err
	}
	appointment.Cancel()

	if err := u.auditService.LogAppointmentCancel(ctx, tx, appointment, previous); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.notificationService.SendCancellationConfirmation(ctx, appointment)

	u.log.WithFields(logrus.Fields{
		"appointment_id":  appointment.ID,
		"previous_status": previous,
	}).Info("Appointment cancelled")

	return nil
}

func (u *cancellationUsecase) findByToken(ctx context.Context, db *gorm.DB, token string) (*entity.Appointment, error) {
	if token == "" {
		return nil, ErrAppointmentNotFound
	}

	appointment, err := u.appointmentRepo.FindByCancelToken(ctx, db, token)
	if err != nil {
		u.log.Warnf("Failed to find appointment by cancel token: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}
