package repository

import (
	"medicit-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PhoneRepository interface {
	Create(db *gorm.DB, phone *entity.Phone) error
}
