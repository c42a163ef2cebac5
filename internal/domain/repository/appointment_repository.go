package repository

import (
	"context"
	"time"

	"clinic-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByCancelToken(ctx context.Context, db *gorm.DB, token string) (*entity.Appointment, error)
	FindConfirmedBySlot(ctx context.Context, db *gorm.DB, doctorID int, date time.Time, slot string) (*entity.Appointment, error)
	FindConfirmedTimes(ctx context.Context, db *gorm.DB, doctorID int, date time.Time) ([]string, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id int, status entity.AppointmentStatus) (int64, error)
}
