package repository

import (
	"context"
	"errors"
	"time"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Omit("Patient", "Doctor", "Clinic").Create(appointment).Error
}

func (r *appointmentRepository) FindByCancelToken(ctx context.Context, db *gorm.DB, token string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).
		Preload("Patient").Preload("Doctor").Preload("Clinic").
		Where("cancel_token = ?", token).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindConfirmedBySlot(ctx context.Context, db *gorm.DB, doctorID int, date time.Time, slot string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).
		Where("doctor_id = ? AND date = ? AND slot_time = ? AND status = ?",
			doctorID, date.Format(entity.DateLayout), slot, entity.AppointmentStatusConfirmed).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindConfirmedTimes lists the "HH:MM" starts already held on that date.
func (r *appointmentRepository) FindConfirmedTimes(ctx context.Context, db *gorm.DB, doctorID int, date time.Time) ([]string, error) {
	var times []string
	err := db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ? AND date = ? AND status = ?",
			doctorID, date.Format(entity.DateLayout), entity.AppointmentStatusConfirmed).
		Order("slot_time ASC").
		Pluck("slot_time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

// UpdateStatus sets the status without any precondition, so repeating the
// same transition is a no-op that still succeeds.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id int, status entity.AppointmentStatus) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
