package dto

// Request DTOs

// LoginRequest carries the credentials exactly as the frontend sends them.
type LoginRequest struct {
	Username string `json:"nombreUsuario" validate:"required"`
	Password string `json:"contrasenia" validate:"required"`
}

// Response DTOs

// PermissionFlags is the per-module capability set inside the consolidated
// profile.
type PermissionFlags struct {
	View     bool `json:"ver"`
	Create   bool `json:"crear"`
	Edit     bool `json:"editar"`
	Delete   bool `json:"eliminar"`
	Download bool `json:"descargar"`
}

// ConsolidatedProfile is everything the client needs after login: identity
// plus the fully materialized permission matrix of the user's role. The stored
// password hash is intentionally absent from this struct; it must never reach
// the wire.
type ConsolidatedProfile struct {
	ID          int                        `json:"id_usuario"`
	Email       string                     `json:"correo"`
	Username    string                     `json:"nombre_usuario"`
	FirstName   string                     `json:"nombres"`
	LastName    string                     `json:"apellidos"`
	RoleID      int                        `json:"id_rol"`
	RoleName    string                     `json:"nombre_rol"`
	Permissions map[string]PermissionFlags `json:"permisos"`
}

// LoginResponse is the consolidated login envelope.
type LoginResponse struct {
	Success  bool                 `json:"success"`
	UserData *ConsolidatedProfile `json:"userData"`
}
