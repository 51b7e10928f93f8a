package repository

import (
	"medicit-backend/internal/domain/entity"
	domainRepo "medicit-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type phoneRepository struct{}

func NewPhoneRepository() domainRepo.PhoneRepository {
	return &phoneRepository{}
}

func (r *phoneRepository) Create(db *gorm.DB, phone *entity.Phone) error {
	return db.Create(phone).Error
}
