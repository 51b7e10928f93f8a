package entity

// Specialty represents a medical specialty (`especialidades` table). Only
// users holding the "Medico" role may have specialties assigned.
type Specialty struct {
	ID          int    `gorm:"column:id_especialidad;primaryKey;autoIncrement" json:"id_especialidad"`
	Name        string `gorm:"column:nombre_especialidad;type:varchar(40);not null" json:"nombre_especialidad"`
	Description string `gorm:"column:descripcion;type:varchar(200);not null" json:"descripcion"`
}

func (Specialty) TableName() string {
	return "especialidades"
}
