package dto

// Request DTOs

// CreateUserRequest is the full registration payload: user plus credential,
// primary contact data and optional specialties, created in one transaction.
type CreateUserRequest struct {
	Username     string  `json:"nombreUsuario" validate:"required,max=15"`
	FirstName    string  `json:"nombres" validate:"required,max=35"`
	LastName     string  `json:"apellidos" validate:"required,max=35"`
	DUI          *string `json:"dui" validate:"omitempty,len=10"`
	BirthDate    string  `json:"fechaNacimiento" validate:"required"`
	RoleID       int     `json:"idRol" validate:"required"`
	StateID      int     `json:"idEstado" validate:"required"`
	Password     string  `json:"contrasenia" validate:"required,min=6"`
	Email        string  `json:"correo" validate:"required,email"`
	Phone        string  `json:"telefono" validate:"required,max=8"`
	SpecialtyIDs []int   `json:"idEspecialidades" validate:"omitempty,dive,gt=0"`
}

type UpdateUserRequest struct {
	Username  *string `json:"nombreUsuario" validate:"omitempty,max=15"`
	FirstName *string `json:"nombres" validate:"omitempty,max=35"`
	LastName  *string `json:"apellidos" validate:"omitempty,max=35"`
	DUI       *string `json:"dui" validate:"omitempty,len=10"`
	BirthDate *string `json:"fechaNacimiento" validate:"omitempty"`
	RoleID    *int    `json:"idRol" validate:"omitempty,gt=0"`
	StateID   *int    `json:"idEstado" validate:"omitempty,gt=0"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"contraseniaActual" validate:"required"`
	NewPassword     string `json:"contraseniaNueva" validate:"required,min=6"`
}

type AssignSpecialtiesRequest struct {
	SpecialtyIDs []int `json:"idEspecialidades" validate:"required,min=1,dive,gt=0"`
}

// Response DTOs

type UserResponse struct {
	ID          int                 `json:"id_usuario"`
	Username    string              `json:"nombre_usuario"`
	FirstName   string              `json:"nombres"`
	LastName    string              `json:"apellidos"`
	DUI         *string             `json:"dui,omitempty"`
	BirthDate   string              `json:"fecha_nacimiento"`
	RoleID      int                 `json:"id_rol"`
	RoleName    string              `json:"nombre_rol"`
	StateID     int                 `json:"id_estado"`
	StateName   string              `json:"estado"`
	Email       string              `json:"correo"`
	Phone       string              `json:"telefono"`
	Specialties []SpecialtyResponse `json:"especialidades,omitempty"`
}

type SpecialtyResponse struct {
	ID   int    `json:"id_especialidad"`
	Name string `json:"nombre_especialidad"`
}
