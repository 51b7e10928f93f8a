package converter

import (
	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		PatientName: appointment.Patient.FirstName + " " + appointment.Patient.LastName,
		DoctorID:    appointment.DoctorID,
		DoctorName:  appointment.Doctor.FirstName + " " + appointment.Doctor.LastName,
		DateTime:    appointment.DateTime.Format("2006-01-02T15:04:05"),
		Reason:      appointment.Reason,
		StateID:     appointment.StateID,
		StateName:   appointment.State.Name,
	}
}

// AppointmentsToResponse converts a slice of appointments.
func AppointmentsToResponse(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
