package entity

import "time"

// Appointment represents a medical appointment (`citas` table) between a
// patient and a doctor, both rows of `usuarios`.
type Appointment struct {
	ID        int       `gorm:"column:id_cita;primaryKey;autoIncrement" json:"id_cita"`
	PatientID int       `gorm:"column:paciente_id;not null;index" json:"paciente_id"`
	DoctorID  int       `gorm:"column:medico_id;not null;index" json:"medico_id"`
	DateTime  time.Time `gorm:"column:fecha_hora;not null" json:"fecha_hora"`
	Reason    string    `gorm:"column:motivo;type:varchar(200);not null" json:"motivo"`
	StateID   int       `gorm:"column:id_estado;not null;index" json:"id_estado"`

	// Relationships
	Patient User  `gorm:"foreignKey:PatientID" json:"paciente,omitempty"`
	Doctor  User  `gorm:"foreignKey:DoctorID" json:"medico,omitempty"`
	State   State `gorm:"foreignKey:StateID" json:"estado,omitempty"`
}

func (Appointment) TableName() string {
	return "citas"
}
