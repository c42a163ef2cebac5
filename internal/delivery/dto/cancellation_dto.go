package dto

type CancellationResponse struct {
	Token       string `json:"-"`
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
	Specialty   string `json:"specialty,omitempty"`
	ClinicName  string `json:"clinic_name,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason,omitempty"`
}
