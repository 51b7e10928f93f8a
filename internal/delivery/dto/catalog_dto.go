package dto

// Reference-data payloads: roles, states, modules and specialties share the
// same name + description shape.

type RoleRequest struct {
	Name        string `json:"nombreRol" validate:"required,max=15"`
	Description string `json:"descripcion" validate:"required,max=200"`
}

type StateRequest struct {
	Name        string `json:"estado" validate:"required,max=15"`
	Description string `json:"descripcion" validate:"required,max=200"`
}

type ModuleRequest struct {
	Name        string `json:"nombreModulo" validate:"required,max=30"`
	Description string `json:"descripcion" validate:"required,max=200"`
}

type SpecialtyRequest struct {
	Name        string `json:"nombreEspecialidad" validate:"required,max=40"`
	Description string `json:"descripcion" validate:"required,max=200"`
}
