package repository

import (
	"errors"

	"medicit-backend/internal/domain/entity"
	domainRepo "medicit-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type stateRepository struct{}

func NewStateRepository() domainRepo.StateRepository {
	return &stateRepository{}
}

func (r *stateRepository) Create(db *gorm.DB, state *entity.State) error {
	return db.Create(state).Error
}

func (r *stateRepository) FindAll(db *gorm.DB) ([]entity.State, error) {
	var states []entity.State
	err := db.Order("id_estado").Find(&states).Error
	return states, err
}

func (r *stateRepository) FindByID(db *gorm.DB, id int) (*entity.State, error) {
	var state entity.State
	err := db.Where("id_estado = ?", id).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (r *stateRepository) FindByName(db *gorm.DB, name string) (*entity.State, error) {
	var state entity.State
	err := db.Where("estado = ?", name).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (r *stateRepository) Update(db *gorm.DB, state *entity.State) error {
	return db.Save(state).Error
}

func (r *stateRepository) Delete(db *gorm.DB, id int) error {
	return db.Delete(&entity.State{}, "id_estado = ?", id).Error
}
