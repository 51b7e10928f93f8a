package entity

// Phone is one row of the `telefonos` table.
type Phone struct {
	ID        int    `gorm:"column:id_telefono;primaryKey;autoIncrement" json:"id_telefono"`
	UserID    int    `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	Number    string `gorm:"column:telefono;type:varchar(8);not null" json:"telefono"`
	IsPrimary bool   `gorm:"column:es_principal;not null;default:false" json:"es_principal"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Phone) TableName() string {
	return "telefonos"
}
