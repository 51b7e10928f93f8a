package repository

import (
	"errors"

	"medicit-backend/internal/domain/entity"
	domainRepo "medicit-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Create(record).Error
}

func (r *medicalRecordRepository) FindAll(db *gorm.DB) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := db.Order("id_antecedente").Find(&records).Error
	return records, err
}

func (r *medicalRecordRepository) FindByID(db *gorm.DB, id int) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.Where("id_antecedente = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindByUserID(db *gorm.DB, userID int) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := db.
		Where("usuario_id = ?", userID).
		Order("id_antecedente").
		Find(&records).Error
	return records, err
}

func (r *medicalRecordRepository) Update(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Save(record).Error
}

func (r *medicalRecordRepository) Delete(db *gorm.DB, id int) error {
	return db.Delete(&entity.MedicalRecord{}, "id_antecedente = ?", id).Error
}
