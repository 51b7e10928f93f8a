package repository

import (
	"medicit-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// UserRepository provides access to the `usuarios` table. Methods receive the
// *gorm.DB so callers can route them through a transaction.
type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindAll(db *gorm.DB) ([]entity.User, error)
	FindByID(db *gorm.DB, id int) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	ReplaceSpecialties(db *gorm.DB, user *entity.User, specialties []entity.Specialty) error
}
