package repository

import (
	"medicit-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindAll(db *gorm.DB) ([]entity.MedicalRecord, error)
	FindByID(db *gorm.DB, id int) (*entity.MedicalRecord, error)
	FindByUserID(db *gorm.DB, userID int) ([]entity.MedicalRecord, error)
	Update(db *gorm.DB, record *entity.MedicalRecord) error
	Delete(db *gorm.DB, id int) error
}
