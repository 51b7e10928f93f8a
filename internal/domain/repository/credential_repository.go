package repository

import (
	"medicit-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// CredentialRepository selects credentials by the explicit es_actual marker,
// never by insertion order.
type CredentialRepository interface {
	Create(db *gorm.DB, credential *entity.Credential) error
	FindCurrentByUserID(db *gorm.DB, userID int) (*entity.Credential, error)
	Update(db *gorm.DB, credential *entity.Credential) error
}
