package repository

import (
	"medicit-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ModuleRepository interface {
	Create(db *gorm.DB, module *entity.Module) error
	FindAll(db *gorm.DB) ([]entity.Module, error)
	FindByID(db *gorm.DB, id int) (*entity.Module, error)
	Update(db *gorm.DB, module *entity.Module) error
	Delete(db *gorm.DB, id int) error
}
