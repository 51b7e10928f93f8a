package entity

// Module represents an application module (`modulos` table) against which
// permissions are granted: citas, usuarios, expedientes, etc.
type Module struct {
	ID          int    `gorm:"column:id_modulo;primaryKey;autoIncrement" json:"id_modulo"`
	Name        string `gorm:"column:nombre_modulo;type:varchar(30);not null" json:"nombre_modulo"`
	Description string `gorm:"column:descripcion;type:varchar(200);not null" json:"descripcion"`

	// Relationships
	Permissions []Permission `gorm:"foreignKey:ModuleID" json:"-"`
}

func (Module) TableName() string {
	return "modulos"
}
