package entity

// MedicalRecord represents one medical-history entry (`antecedentes` table).
// A user accumulates free-text entries over time; the text column is
// unbounded.
type MedicalRecord struct {
	ID     int    `gorm:"column:id_antecedente;primaryKey;autoIncrement" json:"id_antecedente"`
	UserID int    `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	Text   string `gorm:"column:antecedente;type:text;not null" json:"antecedente"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (MedicalRecord) TableName() string {
	return "antecedentes"
}
