package dto

// Request DTOs

type AssignPermissionRequest struct {
	RoleID   int  `json:"idRol" validate:"required"`
	ModuleID int  `json:"idModulo" validate:"required"`
	View     bool `json:"ver"`
	Create   bool `json:"crear"`
	Edit     bool `json:"editar"`
	Delete   bool `json:"eliminar"`
	Download bool `json:"descargar"`
}

// Response DTOs

// PermissionRow is a raw permission assignment as stored.
type PermissionRow struct {
	ID         int    `json:"id_permiso"`
	RoleID     int    `json:"id_rol"`
	ModuleID   int    `json:"id_modulo"`
	ModuleName string `json:"nombre_modulo"`
	View       bool   `json:"ver"`
	Create     bool   `json:"crear"`
	Edit       bool   `json:"editar"`
	Delete     bool   `json:"eliminar"`
	Download   bool   `json:"descargar"`
}
