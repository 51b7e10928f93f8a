package dto

// Request DTOs

type CreateMedicalRecordRequest struct {
	UserID int    `json:"usuarioId" validate:"required,gt=0"`
	Text   string `json:"antecedente" validate:"required"`
}

type UpdateMedicalRecordRequest struct {
	UserID *int    `json:"usuarioId" validate:"omitempty,gt=0"`
	Text   *string `json:"antecedente" validate:"omitempty,min=1"`
}
