package dto

// Request DTOs

// BookingForm is the public booking form as posted by the browser.
type BookingForm struct {
	DoctorID     int    `form:"medecin_id" validate:"required,gt=0"`
	PatientName  string `form:"patient_nom" validate:"required,max=100"`
	PatientPhone string `form:"patient_tel" validate:"required,max=20"`
	PatientEmail string `form:"patient_email" validate:"omitempty,email,max=100"`
	Date         string `form:"date" validate:"required"`
	Time         string `form:"heure" validate:"required,hhmm"`
	Reason       string `form:"motif" validate:"max=200"`
}

// Response DTOs

type BookingResponse struct {
	ID          int    `json:"id"`
	ClinicSlug  string `json:"clinic_slug"`
	DoctorName  string `json:"doctor_name"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

type BookingPageResponse struct {
	Clinic  ClinicResponse   `json:"clinic"`
	Doctors []DoctorResponse `json:"doctors"`
}
