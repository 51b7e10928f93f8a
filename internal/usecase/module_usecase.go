package usecase

import (
	"context"
	"errors"

	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/domain/entity"
	"medicit-backend/internal/domain/repository"
	"medicit-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrModuleInUse = errors.New("module is referenced by permissions")

// ModuleUsecase manages the module catalog. Listing goes through the Redis
// cache; every write invalidates it so permission lookups always see current
// module names.
type ModuleUsecase interface {
	Create(ctx context.Context, req *dto.ModuleRequest) (*entity.Module, error)
	GetAll(ctx context.Context) ([]entity.Module, error)
	GetByID(ctx context.Context, id int) (*entity.Module, error)
	Update(ctx context.Context, id int, req *dto.ModuleRequest) (*entity.Module, error)
	Delete(ctx context.Context, id int) error
}

type moduleUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	moduleRepo repository.ModuleRepository
	cache      service.ModuleCacheService
}

func NewModuleUsecase(db *gorm.DB, log *logrus.Logger, moduleRepo repository.ModuleRepository, cache service.ModuleCacheService) ModuleUsecase {
	return &moduleUsecase{db: db, log: log, moduleRepo: moduleRepo, cache: cache}
}

func (u *moduleUsecase) Create(ctx context.Context, req *dto.ModuleRequest) (*entity.Module, error) {
	module := &entity.Module{Name: req.Name, Description: req.Description}
	if err := u.moduleRepo.Create(u.db, module); err != nil {
		u.log.Warnf("Failed to create module: %+v", err)
		return nil, err
	}
	u.cache.Invalidate(ctx)
	return module, nil
}

func (u *moduleUsecase) GetAll(ctx context.Context) ([]entity.Module, error) {
	if modules, ok := u.cache.Get(ctx); ok {
		return modules, nil
	}

	modules, err := u.moduleRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to list modules: %+v", err)
		return nil, err
	}
	u.cache.Set(ctx, modules)
	return modules, nil
}

func (u *moduleUsecase) GetByID(ctx context.Context, id int) (*entity.Module, error) {
	module, err := u.moduleRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, ErrModuleNotFound
	}
	return module, nil
}

func (u *moduleUsecase) Update(ctx context.Context, id int, req *dto.ModuleRequest) (*entity.Module, error) {
	module, err := u.moduleRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, ErrModuleNotFound
	}

	module.Name = req.Name
	module.Description = req.Description
	if err := u.moduleRepo.Update(u.db, module); err != nil {
		u.log.Warnf("Failed to update module %d: %+v", id, err)
		return nil, err
	}
	u.cache.Invalidate(ctx)
	return module, nil
}

func (u *moduleUsecase) Delete(ctx context.Context, id int) error {
	module, err := u.moduleRepo.FindByID(u.db, id)
	if err != nil {
		return err
	}
	if module == nil {
		return ErrModuleNotFound
	}

	if err := u.moduleRepo.Delete(u.db, id); err != nil {
		if isForeignKeyError(err, "id_modulo") {
			return ErrModuleInUse
		}
		u.log.Warnf("Failed to delete module %d: %+v", id, err)
		return err
	}
	u.cache.Invalidate(ctx)
	return nil
}
