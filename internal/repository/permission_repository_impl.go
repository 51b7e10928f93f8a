package repository

import (
	"errors"

	"medicit-backend/internal/domain/entity"
	domainRepo "medicit-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type permissionRepository struct{}

func NewPermissionRepository() domainRepo.PermissionRepository {
	return &permissionRepository{}
}

func (r *permissionRepository) Create(db *gorm.DB, permission *entity.Permission) error {
	return db.Create(permission).Error
}

func (r *permissionRepository) FindByID(db *gorm.DB, id int) (*entity.Permission, error) {
	var permission entity.Permission
	err := db.Preload("Module").Where("id_permiso = ?", id).First(&permission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepository) FindByRoleID(db *gorm.DB, roleID int) ([]entity.Permission, error) {
	var permissions []entity.Permission
	err := db.
		Preload("Module").
		Where("id_rol = ?", roleID).
		Order("id_permiso").
		Find(&permissions).Error
	return permissions, err
}

func (r *permissionRepository) FindByRoleAndModule(db *gorm.DB, roleID, moduleID int) ([]entity.Permission, error) {
	var permissions []entity.Permission
	err := db.
		Preload("Module").
		Where("id_rol = ? AND id_modulo = ?", roleID, moduleID).
		Order("id_permiso").
		Find(&permissions).Error
	return permissions, err
}

func (r *permissionRepository) FindModuleIDsByRole(db *gorm.DB, roleID int) ([]int, error) {
	var moduleIDs []int
	err := db.
		Model(&entity.Permission{}).
		Distinct("id_modulo").
		Where("id_rol = ?", roleID).
		Order("id_modulo").
		Pluck("id_modulo", &moduleIDs).Error
	return moduleIDs, err
}

func (r *permissionRepository) Delete(db *gorm.DB, id int) error {
	return db.Delete(&entity.Permission{}, "id_permiso = ?", id).Error
}
