package repository

import (
	"errors"

	"medicit-backend/internal/domain/entity"
	domainRepo "medicit-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type credentialRepository struct{}

func NewCredentialRepository() domainRepo.CredentialRepository {
	return &credentialRepository{}
}

func (r *credentialRepository) Create(db *gorm.DB, credential *entity.Credential) error {
	return db.Create(credential).Error
}

func (r *credentialRepository) FindCurrentByUserID(db *gorm.DB, userID int) (*entity.Credential, error) {
	var credential entity.Credential
	err := db.Where("id_usuario = ? AND es_actual = ?", userID, true).First(&credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &credential, nil
}

func (r *credentialRepository) Update(db *gorm.DB, credential *entity.Credential) error {
	return db.Save(credential).Error
}
