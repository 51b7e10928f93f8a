package repository

import (
	"medicit-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	Create(db *gorm.DB, specialty *entity.Specialty) error
	FindAll(db *gorm.DB) ([]entity.Specialty, error)
	FindByID(db *gorm.DB, id int) (*entity.Specialty, error)
	FindByIDs(db *gorm.DB, ids []int) ([]entity.Specialty, error)
	Update(db *gorm.DB, specialty *entity.Specialty) error
	Delete(db *gorm.DB, id int) error
}
