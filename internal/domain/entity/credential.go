package entity

import "time"

// Credential is one row of the `contrasenias` table. Only the bcrypt hash is
// ever stored. A user may accumulate historical rows; exactly one carries
// es_actual = true and only that one is consulted during login.
type Credential struct {
	ID        int       `gorm:"column:id_contrasenia;primaryKey;autoIncrement" json:"id_contrasenia"`
	UserID    int       `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	Hash      string    `gorm:"column:contrasenia;type:varchar(100);not null" json:"-"`
	IsCurrent bool      `gorm:"column:es_actual;not null;default:true" json:"es_actual"`
	CreatedAt time.Time `gorm:"column:creado;autoCreateTime" json:"creado"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Credential) TableName() string {
	return "contrasenias"
}
