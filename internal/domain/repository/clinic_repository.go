package repository

import (
	"context"

	"clinic-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type ClinicRepository interface {
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*entity.Clinic, error)
	FindActiveBySlug(ctx context.Context, db *gorm.DB, slug string) (*entity.Clinic, error)
}
