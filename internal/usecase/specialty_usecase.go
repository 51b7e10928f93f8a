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

var ErrSpecialtyInUse = errors.New("specialty is assigned to users")

type SpecialtyUsecase interface {
	Create(ctx context.Context, req *dto.SpecialtyRequest) (*entity.Specialty, error)
	GetAll(ctx context.Context) ([]entity.Specialty, error)
	GetByID(ctx context.Context, id int) (*entity.Specialty, error)
	Update(ctx context.Context, id int, req *dto.SpecialtyRequest) (*entity.Specialty, error)
	Delete(ctx context.Context, id int) error
}

type specialtyUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
}

func NewSpecialtyUsecase(db *gorm.DB, log *logrus.Logger, specialtyRepo repository.SpecialtyRepository) SpecialtyUsecase {
	return &specialtyUsecase{db: db, log: log, specialtyRepo: specialtyRepo}
}

func (u *specialtyUsecase) Create(ctx context.Context, req *dto.SpecialtyRequest) (*entity.Specialty, error) {
	specialty := &entity.Specialty{Name: req.Name, Description: req.Description}
	if err := u.specialtyRepo.Create(u.db, specialty); err != nil {
		u.log.Warnf("Failed to create specialty: %+v", err)
		return nil, err
	}
	return specialty, nil
}

func (u *specialtyUsecase) GetAll(ctx context.Context) ([]entity.Specialty, error) {
	specialties, err := u.specialtyRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to list specialties: %+v", err)
		return nil, err
	}
	return specialties, nil
}

func (u *specialtyUsecase) GetByID(ctx context.Context, id int) (*entity.Specialty, error) {
	specialty, err := u.specialtyRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}
	return specialty, nil
}

func (u *specialtyUsecase) Update(ctx context.Context, id int, req *dto.SpecialtyRequest) (*entity.Specialty, error) {
	specialty, err := u.specialtyRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	specialty.Name = req.Name
	specialty.Description = req.Description
	if err := u.specialtyRepo.Update(u.db, specialty); err != nil {
		u.log.Warnf("Failed to update specialty %d: %+v", id, err)
		return nil, err
	}
	return specialty, nil
}

func (u *specialtyUsecase) Delete(ctx context.Context, id int) error {
	specialty, err := u.specialtyRepo.FindByID(u.db, id)
	if err != nil {
		return err
	}
	if specialty == nil {
		return ErrSpecialtyNotFound
	}

	if err := u.specialtyRepo.Delete(u.db, id); err != nil {
		if isForeignKeyError(err, "id_especialidad") {
			return ErrSpecialtyInUse
		}
		u.log.Warnf("Failed to delete specialty %d: %+v", id, err)
		return err
	}
	return nil
}
