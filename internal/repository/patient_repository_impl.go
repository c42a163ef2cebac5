package repository

import (
	"context"
	"errors"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

// FindByPhone looks the phone up across all clinics; the oldest record wins.
func (r *patientRepository) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("phone = ?", phone).Order("id ASC").First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}
