package repository

import (
	"medicit-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	Create(db *gorm.DB, role *entity.Role) error
	FindAll(db *gorm.DB) ([]entity.Role, error)
	FindByID(db *gorm.DB, id int) (*entity.Role, error)
	FindByName(db *gorm.DB, name string) (*entity.Role, error)
	Update(db *gorm.DB, role *entity.Role) error
	Delete(db *gorm.DB, id int) error
}
