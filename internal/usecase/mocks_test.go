package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func newTestLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}

type MockClinicRepository struct {
	mock.Mock
}

func (m *MockClinicRepository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*entity.Clinic, error) {
	args := m.Called(ctx, db, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Clinic), args.Error(1)
}

func (m *MockClinicRepository) FindActiveBySlug(ctx context.Context, db *gorm.DB, slug string) (*entity.Clinic, error) {
	args := m.Called(ctx, db, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Clinic), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindActiveDoctorsByClinic(ctx context.Context, db *gorm.DB, clinicID int) ([]entity.User, error) {
	args := m.Called(ctx, db, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(ctx, db, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.Patient, error) {
	args := m.Called(ctx, db, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) FindByDoctorAndDate(ctx context.Context, db *gorm.DB, doctorID int, date time.Time) (*entity.Availability, error) {
	args := m.Called(ctx, db, doctorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Availability), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(ctx, db, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByCancelToken(ctx context.Context, db *gorm.DB, token string) (*entity.Appointment, error) {
	args := m.Called(ctx, db, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindConfirmedBySlot(ctx context.Context, db *gorm.DB, doctorID int, date time.Time, slot string) (*entity.Appointment, error) {
	args := m.Called(ctx, db, doctorID, date, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindConfirmedTimes(ctx context.Context, db *gorm.DB, doctorID int, date time.Time) ([]string, error) {
	args := m.Called(ctx, db, doctorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id int, status entity.AppointmentStatus) (int64, error) {
	args := m.Called(ctx, db, id, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogAppointmentCreate(ctx context.Context, tx *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(ctx, tx, appointment)
	return args.Error(0)
}

func (m *MockAuditService) LogAppointmentCancel(ctx context.Context, tx *gorm.DB, appointment *entity.Appointment, previous entity.AppointmentStatus) error {
	args := m.Called(ctx, tx, appointment, previous)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) SendBookingConfirmation(ctx context.Context, appointment *entity.Appointment) {
	m.Called(ctx, appointment)
}

func (m *MockNotificationService) SendCancellationConfirmation(ctx context.Context, appointment *entity.Appointment) {
	m.Called(ctx, appointment)
}
