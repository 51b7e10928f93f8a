package repository

import (
	"medicit-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type EmailRepository interface {
	Create(db *gorm.DB, email *entity.Email) error
}
