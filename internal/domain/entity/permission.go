package entity

// Permission is one row of the `permisos` table: the capability flags a role
// holds in one module. There is deliberately no uniqueness constraint on
// (id_rol, id_modulo); when duplicates exist the row with the highest id wins
// while folding into the permission catalog.
type Permission struct {
	ID          int  `gorm:"column:id_permiso;primaryKey;autoIncrement" json:"id_permiso"`
	RoleID      int  `gorm:"column:id_rol;not null;index" json:"id_rol"`
	ModuleID    int  `gorm:"column:id_modulo;not null;index" json:"id_modulo"`
	CanView     bool `gorm:"column:ver;not null;default:false" json:"ver"`
	CanCreate   bool `gorm:"column:crear;not null;default:false" json:"crear"`
	CanEdit     bool `gorm:"column:editar;not null;default:false" json:"editar"`
	CanDelete   bool `gorm:"column:eliminar;not null;default:false" json:"eliminar"`
	CanDownload bool `gorm:"column:descargar;not null;default:false" json:"descargar"`

	// Relationships
	Role   Role   `gorm:"foreignKey:RoleID" json:"-"`
	Module Module `gorm:"foreignKey:ModuleID" json:"modulo,omitempty"`
}

func (Permission) TableName() string {
	return "permisos"
}

// Capability names as they travel on the wire. The enumeration is closed;
// anything else evaluates to "no capability", never an error.
const (
	CapabilityView     = "Ver"
	CapabilityCreate   = "Crear"
	CapabilityEdit     = "Editar"
	CapabilityDelete   = "Eliminar"
	CapabilityDownload = "Descargar"
)

// HasCapability reports whether this row grants the named capability.
func (p *Permission) HasCapability(name string) bool {
	switch name {
	case CapabilityView:
		return p.CanView
	case CapabilityCreate:
		return p.CanCreate
	case CapabilityEdit:
		return p.CanEdit
	case CapabilityDelete:
		return p.CanDelete
	case CapabilityDownload:
		return p.CanDownload
	default:
		return false
	}
}
