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

var ErrStateInUse = errors.New("state is referenced by users or appointments")

type StateUsecase interface {
	Create(ctx context.Context, req *dto.StateRequest) (*entity.State, error)
	GetAll(ctx context.Context) ([]entity.State, error)
	GetByID(ctx context.Context, id int) (*entity.State, error)
	Update(ctx context.Context, id int, req *dto.StateRequest) (*entity.State, error)
	Delete(ctx context.Context, id int) error
}

type stateUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	stateRepo repository.StateRepository
}

func NewStateUsecase(db *gorm.DB, log *logrus.Logger, stateRepo repository.StateRepository) StateUsecase {
	return &stateUsecase{db: db, log: log, stateRepo: stateRepo}
}

func (u *stateUsecase) Create(ctx context.Context, req *dto.StateRequest) (*entity.State, error) {
	state := &entity.State{Name: req.Name, Description: req.Description}
	if err := u.stateRepo.Create(u.db, state); err != nil {
		u.log.Warnf("Failed to create state: %+v", err)
		return nil, err
	}
	return state, nil
}

func (u *stateUsecase) GetAll(ctx context.Context) ([]entity.State, error) {
	states, err := u.stateRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to list states: %+v", err)
		return nil, err
	}
	return states, nil
}

func (u *stateUsecase) GetByID(ctx context.Context, id int) (*entity.State, error) {
	state, err := u.stateRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrStateNotFound
	}
	return state, nil
}

func (u *stateUsecase) Update(ctx context.Context, id int, req *dto.StateRequest) (*entity.State, error) {
	state, err := u.stateRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrStateNotFound
	}

	state.Name = req.Name
	state.Description = req.Description
	if err := u.stateRepo.Update(u.db, state); err != nil {
		u.log.Warnf("Failed to update state %d: %+v", id, err)
		return nil, err
	}
	return state, nil
}

func (u *stateUsecase) Delete(ctx context.Context, id int) error {
	state, err := u.stateRepo.FindByID(u.db, id)
	if err != nil {
		return err
	}
	if state == nil {
		return ErrStateNotFound
	}

	if err := u.stateRepo.Delete(u.db, id); err != nil {
		if isForeignKeyError(err, "id_estado") {
			return ErrStateInUse
		}
		u.log.Warnf("Failed to delete state %d: %+v", id, err)
		return err
	}
	return nil
}
