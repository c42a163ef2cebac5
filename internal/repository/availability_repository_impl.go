package repository

import (
	"context"
	"errors"
	"time"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

// FindByDoctorAndDate returns the first availability row for that exact date.
func (r *availabilityRepository) FindByDoctorAndDate(ctx context.Context, db *gorm.DB, doctorID int, date time.Time) (*entity.Availability, error) {
	var availability entity.Availability
	err := db.WithContext(ctx).
		Where("doctor_id = ? AND date = ?", doctorID, date.Format(entity.DateLayout)).
		Order("id ASC").
		First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &availability, nil
}
