package entity

import "time"

type Prescription struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID int       `gorm:"not null;index" json:"appointment_id"`
	PatientID     int       `gorm:"not null;index" json:"patient_id"`
	DoctorID      int       `gorm:"not null;index" json:"doctor_id"`
	ClinicID      int       `gorm:"not null;index" json:"clinic_id"`
	Medications   string    `gorm:"type:text;not null" json:"medications"`
	Advice        string    `gorm:"type:text" json:"advice,omitempty"`
	PDFPath       string    `gorm:"column:pdf_path;type:varchar(200)" json:"pdf_path,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
