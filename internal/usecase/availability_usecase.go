package usecase

import (
	"context"

	"clinic-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AvailabilityUsecase interface {
	GetAvailableSlots(ctx context.Context, doctorID int, date string) ([]string, error)
}

type availabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	availabilityRepo repository.AvailabilityRepository
	appointmentRepo  repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	availabilityRepo repository.AvailabilityRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
	}
}

// GetAvailableSlots returns the doctor's free "HH:MM" starts for one date in
// ascending order. Only an availability row for that exact date counts; with
// none the result is empty, not an error.
func (u *availabilityUsecase) GetAvailableSlots(ctx context.Context, doctorID int, date string) ([]string, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	doctor, err := u.userRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	availability, err := u.availabilityRepo.FindByDoctorAndDate(ctx, u.db, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to find availability for doctor %d on %s: %+v", doctorID, date, err)
		return nil, err
	}
	if availability == nil {
		return []string{}, nil
	}

	taken, err := u.appointmentRepo.FindConfirmedTimes(ctx, u.db, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to find booked slots for doctor %d on %s: %+v", doctorID, date, err)
		return nil, err
	}

	slots, err := availability.FreeSlots(taken)
	if err != nil {
		u.log.Errorf("Malformed availability %d: %+v", availability.ID, err)
		return nil, err
	}

	return slots, nil
}
