package repository

import (
	"context"
	"errors"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type clinicRepository struct{}

func NewClinicRepository() domainRepo.ClinicRepository {
	return &clinicRepository{}
}

func (r *clinicRepository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.WithContext(ctx).Where("slug = ?", slug).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}

// FindActiveBySlug only returns clinics whose subscription is active.
func (r *clinicRepository) FindActiveBySlug(ctx context.Context, db *gorm.DB, slug string) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.WithContext(ctx).
		Where("slug = ? AND subscription_active = ?", slug, true).
		First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}
