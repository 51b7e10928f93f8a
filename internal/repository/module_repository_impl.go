package repository

import (
	"errors"

	"medicit-backend/internal/domain/entity"
	domainRepo "medicit-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type moduleRepository struct{}

func NewModuleRepository() domainRepo.ModuleRepository {
	return &moduleRepository{}
}

func (r *moduleRepository) Create(db *gorm.DB, module *entity.Module) error {
	return db.Create(module).Error
}

func (r *moduleRepository) FindAll(db *gorm.DB) ([]entity.Module, error) {
	var modules []entity.Module
	err := db.Order("id_modulo").Find(&modules).Error
	return modules, err
}

func (r *moduleRepository) FindByID(db *gorm.DB, id int) (*entity.Module, error) {
	var module entity.Module
	err := db.Where("id_modulo = ?", id).First(&module).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepository) Update(db *gorm.DB, module *entity.Module) error {
	return db.Save(module).Error
}

func (r *moduleRepository) Delete(db *gorm.DB, id int) error {
	return db.Delete(&entity.Module{}, "id_modulo = ?", id).Error
}
