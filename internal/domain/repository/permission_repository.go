package repository

import (
	"medicit-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// PermissionRepository provides access to the `permisos` rows. Listings are
// ordered by id so catalog folding is deterministic (later rows overwrite
// earlier ones for the same module).
type PermissionRepository interface {
	Create(db *gorm.DB, permission *entity.Permission) error
	FindByID(db *gorm.DB, id int) (*entity.Permission, error)
	FindByRoleID(db *gorm.DB, roleID int) ([]entity.Permission, error)
	FindByRoleAndModule(db *gorm.DB, roleID, moduleID int) ([]entity.Permission, error)
	FindModuleIDsByRole(db *gorm.DB, roleID int) ([]int, error)
	Delete(db *gorm.DB, id int) error
}
