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

var (
	ErrRoleNameTaken = errors.New("role name already exists")
	ErrRoleInUse     = errors.New("role is referenced by users or permissions")
)

type RoleUsecase interface {
	Create(ctx context.Context, req *dto.RoleRequest) (*entity.Role, error)
	GetAll(ctx context.Context) ([]entity.Role, error)
	GetByID(ctx context.Context, id int) (*entity.Role, error)
	Update(ctx context.Context, id int, req *dto.RoleRequest) (*entity.Role, error)
	Delete(ctx context.Context, id int) error
}

type roleUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	roleRepo repository.RoleRepository
}

func NewRoleUsecase(db *gorm.DB, log *logrus.Logger, roleRepo repository.RoleRepository) RoleUsecase {
	return &roleUsecase{db: db, log: log, roleRepo: roleRepo}
}

func (u *roleUsecase) Create(ctx context.Context, req *dto.RoleRequest) (*entity.Role, error) {
	role := &entity.Role{Name: req.Name, Description: req.Description}
	if err := u.roleRepo.Create(u.db, role); err != nil {
		if isDuplicateKeyError(err, "nombre_rol") {
			return nil, ErrRoleNameTaken
		}
		u.log.Warnf("Failed to create role: %+v", err)
		return nil, err
	}
	return role, nil
}

func (u *roleUsecase) GetAll(ctx context.Context) ([]entity.Role, error) {
	roles, err := u.roleRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to list roles: %+v", err)
		return nil, err
	}
	return roles, nil
}

func (u *roleUsecase) GetByID(ctx context.Context, id int) (*entity.Role, error) {
	role, err := u.roleRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	return role, nil
}

func (u *roleUsecase) Update(ctx context.Context, id int, req *dto.RoleRequest) (*entity.Role, error) {
	role, err := u.roleRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	role.Name = req.Name
	role.Description = req.Description
	if err := u.roleRepo.Update(u.db, role); err != nil {
		if isDuplicateKeyError(err, "nombre_rol") {
			return nil, ErrRoleNameTaken
		}
		u.log.Warnf("Failed to update role %d: %+v", id, err)
		return nil, err
	}
	return role, nil
}

func (u *roleUsecase) Delete(ctx context.Context, id int) error {
	role, err := u.roleRepo.FindByID(u.db, id)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}

	if err := u.roleRepo.Delete(u.db, id); err != nil {
		if isForeignKeyError(err, "id_rol") {
			return ErrRoleInUse
		}
		u.log.Warnf("Failed to delete role %d: %+v", id, err)
		return err
	}
	return nil
}
