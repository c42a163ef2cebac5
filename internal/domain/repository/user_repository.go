package repository

import (
	"context"

	"clinic-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error)
	FindActiveDoctorsByClinic(ctx context.Context, db *gorm.DB, clinicID int) ([]entity.User, error)
}
