package repository

import (
	"medicit-backend/internal/domain/entity"
	domainRepo "medicit-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type emailRepository struct{}

func NewEmailRepository() domainRepo.EmailRepository {
	return &emailRepository{}
}

func (r *emailRepository) Create(db *gorm.DB, email *entity.Email) error {
	return db.Create(email).Error
}
