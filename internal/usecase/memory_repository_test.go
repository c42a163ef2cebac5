package usecase

import (
	"context"
	"sync"
	"time"

	"clinic-booking/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// memoryAppointmentRepository mimics the appointments table including the
// partial unique index on confirmed slots.
type memoryAppointmentRepository struct {
	mu     sync.Mutex
	nextID int
	rows   []*entity.Appointment
}

func newMemoryAppointmentRepository() *memoryAppointmentRepository {
	return &memoryAppointmentRepository{}
}

func sameDay(a, b time.Time) bool {
	return a.Format(entity.DateLayout) == b.Format(entity.DateLayout)
}

func (r *memoryAppointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.IsConfirmed() && appointment.IsConfirmed() &&
			row.DoctorID == appointment.DoctorID && sameDay(row.Date, appointment.Date) && row.Time == appointment.Time {
			return &pgconn.PgError{Code: "23505", ConstraintName: entity.ConfirmedSlotConstraint}
		}
	}

	r.nextID++
	appointment.ID = r.nextID
	stored := *appointment
	r.rows = append(r.rows, &stored)
	return nil
}

func (r *memoryAppointmentRepository) FindByCancelToken(ctx context.Context, db *gorm.DB, token string) (*entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.CancelToken == token {
			found := *row
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryAppointmentRepository) FindConfirmedBySlot(ctx context.Context, db *gorm.DB, doctorID int, date time.Time, slot string) (*entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.IsConfirmed() && row.DoctorID == doctorID && sameDay(row.Date, date) && row.Time == slot {
			found := *row
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryAppointmentRepository) FindConfirmedTimes(ctx context.Context, db *gorm.DB, doctorID int, date time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	times := []string{}
	for _, row := range r.rows {
		if row.IsConfirmed() && row.DoctorID == doctorID && sameDay(row.Date, date) {
			times = append(times, row.Time)
		}
	}
	return times, nil
}

func (r *memoryAppointmentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id int, status entity.AppointmentStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.ID == id {
			row.Status = status
			return 1, nil
		}
	}
	return 0, nil
}

func (r *memoryAppointmentRepository) confirmedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, row := range r.rows {
		if row.IsConfirmed() {
			count++
		}
	}
	return count
}
