package repository

import (
	"context"
	"time"

	"clinic-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	FindByDoctorAndDate(ctx context.Context, db *gorm.DB, doctorID int, date time.Time) (*entity.Availability, error)
}
