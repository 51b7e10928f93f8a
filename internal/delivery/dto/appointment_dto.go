package dto

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID int    `json:"pacienteId" validate:"required,gt=0"`
	DoctorID  int    `json:"medicoId" validate:"required,gt=0"`
	DateTime  string `json:"fechaHora" validate:"required"`
	Reason    string `json:"motivo" validate:"required,max=200"`
	StateID   int    `json:"idEstado" validate:"required,gt=0"`
}

type UpdateAppointmentRequest struct {
	PatientID *int    `json:"pacienteId" validate:"omitempty,gt=0"`
	DoctorID  *int    `json:"medicoId" validate:"omitempty,gt=0"`
	DateTime  *string `json:"fechaHora" validate:"omitempty"`
	Reason    *string `json:"motivo" validate:"omitempty,max=200"`
	StateID   *int    `json:"idEstado" validate:"omitempty,gt=0"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          int    `json:"id_cita"`
	PatientID   int    `json:"paciente_id"`
	PatientName string `json:"paciente"`
	DoctorID    int    `json:"medico_id"`
	DoctorName  string `json:"medico"`
	DateTime    string `json:"fecha_hora"`
	Reason      string `json:"motivo"`
	StateID     int    `json:"id_estado"`
	StateName   string `json:"estado"`
}
