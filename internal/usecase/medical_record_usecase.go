package usecase

import (
	"context"
	"errors"

	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/domain/entity"
	"medicit-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrMedicalRecordNotFound = errors.New("medical record not found")

// MedicalRecordUsecase manages the free-text medical-history entries of a
// user. Entries are plain rows; there is no versioning and no soft delete.
type MedicalRecordUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*entity.MedicalRecord, error)
	GetAll(ctx context.Context) ([]entity.MedicalRecord, error)
	GetByID(ctx context.Context, id int) (*entity.MedicalRecord, error)
	GetByUser(ctx context.Context, userID int) ([]entity.MedicalRecord, error)
	Update(ctx context.Context, id int, req *dto.UpdateMedicalRecordRequest) (*entity.MedicalRecord, error)
	Delete(ctx context.Context, id int) error
}

type medicalRecordUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	medicalRecordRepo repository.MedicalRecordRepository
	userRepo          repository.UserRepository
}

func NewMedicalRecordUsecase(db *gorm.DB, log *logrus.Logger, medicalRecordRepo repository.MedicalRecordRepository, userRepo repository.UserRepository) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:                db,
		log:               log,
		medicalRecordRepo: medicalRecordRepo,
		userRepo:          userRepo,
	}
}

func (u *medicalRecordUsecase) Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*entity.MedicalRecord, error) {
	user, err := u.userRepo.FindByID(u.db, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	record := &entity.MedicalRecord{UserID: req.UserID, Text: req.Text}
	if err := u.medicalRecordRepo.Create(u.db, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}
	return record, nil
}

func (u *medicalRecordUsecase) GetAll(ctx context.Context) ([]entity.MedicalRecord, error) {
	records, err := u.medicalRecordRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}
	return records, nil
}

func (u *medicalRecordUsecase) GetByID(ctx context.Context, id int) (*entity.MedicalRecord, error) {
	record, err := u.medicalRecordRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}
	return record, nil
}

func (u *medicalRecordUsecase) GetByUser(ctx context.Context, userID int) ([]entity.MedicalRecord, error) {
	user, err := u.userRepo.FindByID(u.db, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	records, err := u.medicalRecordRepo.FindByUserID(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to list medical records for user %d: %+v", userID, err)
		return nil, err
	}
	return records, nil
}

func (u *medicalRecordUsecase) Update(ctx context.Context, id int, req *dto.UpdateMedicalRecordRequest) (*entity.MedicalRecord, error) {
	record, err := u.medicalRecordRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	if req.UserID != nil {
		user, err := u.userRepo.FindByID(u.db, *req.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		record.UserID = *req.UserID
	}
	if req.Text != nil {
		record.Text = *req.Text
	}

	if err := u.medicalRecordRepo.Update(u.db, record); err != nil {
		u.log.Warnf("Failed to update medical record %d: %+v", id, err)
		return nil, err
	}
	return record, nil
}

func (u *medicalRecordUsecase) Delete(ctx context.Context, id int) error {
	record, err := u.medicalRecordRepo.FindByID(u.db, id)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrMedicalRecordNotFound
	}
	return u.medicalRecordRepo.Delete(u.db, id)
}
