package entity

// Email is one row of the `correos` table. The consolidated login profile
// exposes the row marked es_principal, not whichever happens to come first.
type Email struct {
	ID        int    `gorm:"column:id_correo;primaryKey;autoIncrement" json:"id_correo"`
	UserID    int    `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	Address   string `gorm:"column:correo;type:varchar(100);uniqueIndex;not null" json:"correo"`
	IsPrimary bool   `gorm:"column:es_principal;not null;default:false" json:"es_principal"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Email) TableName() string {
	return "correos"
}
