package entity

// Role represents a user role (`roles` table). The permission ceiling of a
// user is entirely determined by its role; there are no per-user overrides.
type Role struct {
	ID          int    `gorm:"column:id_rol;primaryKey;autoIncrement" json:"id_rol"`
	Name        string `gorm:"column:nombre_rol;type:varchar(15);uniqueIndex;not null" json:"nombre_rol"`
	Description string `gorm:"column:descripcion;type:varchar(200);not null" json:"descripcion"`

	// Relationships
	Users       []User       `gorm:"foreignKey:RoleID" json:"-"`
	Permissions []Permission `gorm:"foreignKey:RoleID" json:"-"`
}

func (Role) TableName() string {
	return "roles"
}

// Well-known role names seeded by the initial migration.
const (
	RoleAdmin   = "Admin"
	RoleDoctor  = "Medico"
	RolePatient = "Paciente"
)
