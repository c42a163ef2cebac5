package dto

type ClinicResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type DoctorResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
}
