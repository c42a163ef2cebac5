package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

// ClinicToResponse converts a Clinic entity to ClinicResponse DTO
func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}

	return &dto.ClinicResponse{
		ID:      clinic.ID,
		Name:    clinic.Name,
		Slug:    clinic.Slug,
		Address: clinic.Address,
		Phone:   clinic.Phone,
		Email:   clinic.Email,
	}
}

// DoctorsToResponses converts doctor users to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.User) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = dto.DoctorResponse{
			ID:        doctor.ID,
			Name:      doctor.Name,
			Specialty: doctor.Specialty,
		}
	}
	return responses
}
