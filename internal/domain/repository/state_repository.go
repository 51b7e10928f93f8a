package repository

import (
	"medicit-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type StateRepository interface {
	Create(db *gorm.DB, state *entity.State) error
	FindAll(db *gorm.DB) ([]entity.State, error)
	FindByID(db *gorm.DB, id int) (*entity.State, error)
	FindByName(db *gorm.DB, name string) (*entity.State, error)
	Update(db *gorm.DB, state *entity.State) error
	Delete(db *gorm.DB, id int) error
}
