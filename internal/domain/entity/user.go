package entity

import (
	"time"
)

// User represents the central `usuarios` table. Identity and demographic
// data live here; emails, phones and credentials hang off it as owned
// collections with an explicit primary/current marker.
type User struct {
	ID        int        `gorm:"column:id_usuario;primaryKey;autoIncrement" json:"id_usuario"`
	Username  string     `gorm:"column:nombre_usuario;type:varchar(15);uniqueIndex;not null" json:"nombre_usuario"`
	FirstName string     `gorm:"column:nombres;type:varchar(35);not null" json:"nombres"`
	LastName  string     `gorm:"column:apellidos;type:varchar(35);not null" json:"apellidos"`
	DUI       *string    `gorm:"column:dui;type:varchar(10);uniqueIndex" json:"dui,omitempty"`
	BirthDate time.Time  `gorm:"column:fecha_nacimiento;type:date;not null" json:"fecha_nacimiento"`
	RoleID    int        `gorm:"column:id_rol;not null;index" json:"id_rol"`
	StateID   int        `gorm:"column:id_estado;not null;index" json:"id_estado"`

	// Relationships
	Role        Role         `gorm:"foreignKey:RoleID" json:"rol,omitempty"`
	State       State        `gorm:"foreignKey:StateID" json:"estado,omitempty"`
	Emails      []Email      `gorm:"foreignKey:UserID" json:"correos,omitempty"`
	Phones      []Phone      `gorm:"foreignKey:UserID" json:"telefonos,omitempty"`
	Credentials []Credential `gorm:"foreignKey:UserID" json:"-"`
	Specialties []Specialty  `gorm:"many2many:usuario_especialidad;foreignKey:ID;joinForeignKey:id_usuario;References:ID;joinReferences:id_especialidad" json:"especialidades,omitempty"`
}

func (User) TableName() string {
	return "usuarios"
}

// PrimaryEmail returns the address marked es_principal, or "" when the user
// has none loaded.
func (u *User) PrimaryEmail() string {
	for _, e := range u.Emails {
		if e.IsPrimary {
			return e.Address
		}
	}
	return ""
}

// PrimaryPhone returns the number marked es_principal, or "".
func (u *User) PrimaryPhone() string {
	for _, p := range u.Phones {
		if p.IsPrimary {
			return p.Number
		}
	}
	return ""
}
