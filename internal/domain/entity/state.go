package entity

// State represents a lifecycle state (`estados` table), shared by users and
// appointments. Deleting a user is a transition to the "Inactivo" state, never
// a physical delete.
type State struct {
	ID          int    `gorm:"column:id_estado;primaryKey;autoIncrement" json:"id_estado"`
	Name        string `gorm:"column:estado;type:varchar(15);not null" json:"estado"`
	Description string `gorm:"column:descripcion;type:varchar(200);not null" json:"descripcion"`

	// Relationships
	Users []User `gorm:"foreignKey:StateID" json:"-"`
}

func (State) TableName() string {
	return "estados"
}

const (
	StateActive   = "Activo"
	StateInactive = "Inactivo"
)
