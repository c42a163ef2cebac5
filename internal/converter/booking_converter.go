package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

// AppointmentToBookingResponse converts an Appointment entity to BookingResponse DTO
func AppointmentToBookingResponse(appointment *entity.Appointment) *dto.BookingResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:     appointment.ID,
		Date:   appointment.Date.Format(entity.DateLayout),
		Time:   appointment.Time,
		Status: string(appointment.Status),
	}

	if appointment.Clinic != nil {
		response.ClinicSlug = appointment.Clinic.Slug
	}
	if appointment.Doctor != nil {
		response.DoctorName = appointment.Doctor.Name
	}
	if appointment.Patient != nil {
		response.PatientName = appointment.Patient.Name
	}

	return response
}

// AppointmentToCancellationResponse builds the cancellation prompt view
func AppointmentToCancellationResponse(appointment *entity.Appointment) *dto.CancellationResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.CancellationResponse{
		Token:  appointment.CancelToken,
		Date:   appointment.Date.Format(entity.DisplayDateLayout),
		Time:   appointment.Time,
		Reason: appointment.Reason,
	}

	if appointment.Patient != nil {
		response.PatientName = appointment.Patient.Name
	}
	if appointment.Doctor != nil {
		response.DoctorName = appointment.Doctor.Name
		response.Specialty = appointment.Doctor.Specialty
	}
	if appointment.Clinic != nil {
		response.ClinicName = appointment.Clinic.Name
	}

	return response
}
