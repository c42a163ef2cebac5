package entity

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// AppointmentStatus represents the lifecycle of an appointment
type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusDone      AppointmentStatus = "done"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// ConfirmedSlotConstraint is the partial unique index guarding
// (doctor_id, date, slot_time) among confirmed appointments.
const ConfirmedSlotConstraint = "uq_appointments_confirmed_slot"

// Appointment is a booked slot. Time is the "HH:MM" start of the slot.
type Appointment struct {
	ID          int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   int               `gorm:"not null;index" json:"patient_id"`
	DoctorID    int               `gorm:"not null;index" json:"doctor_id"`
	ClinicID    int               `gorm:"not null;index" json:"clinic_id"`
	Date        time.Time         `gorm:"type:date;not null" json:"date"`
	Time        string            `gorm:"column:slot_time;type:varchar(5);not null" json:"time"`
	Reason      string            `gorm:"type:varchar(200)" json:"reason,omitempty"`
	Notes       string            `gorm:"type:text" json:"notes,omitempty"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'confirmed';index" json:"status"`
	CancelToken string            `gorm:"type:varchar(100);uniqueIndex;not null" json:"-"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Clinic  *Clinic  `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsConfirmed checks if the appointment still holds its slot
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsCancelled checks if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsPast reports whether the appointment date is strictly before now's date.
func (a *Appointment) IsPast(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}

func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

func (a *Appointment) Complete() {
	a.Status = AppointmentStatusDone
}

func (a *Appointment) MarkNoShow() {
	a.Status = AppointmentStatusNoShow
}

// NewCancelToken mints an unguessable url-safe token (32 random bytes).
func NewCancelToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate cancel token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
