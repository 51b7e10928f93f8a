package usecase

import (
	"context"
	"errors"

	"medicit-backend/internal/converter"
	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/domain/entity"
	"medicit-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRoleNotFound       = errors.New("role not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrPermissionNotFound = errors.New("permission not found")
)

// PermissionUsecase is the permission catalog and access evaluator: it
// expands a role into its capability matrix and answers point queries about
// module access. Results are always computed from the store; nothing is
// cached between requests.
type PermissionUsecase interface {
	// CatalogForRole materializes the moduleName -> flags map for a role.
	// An absent role yields an empty map, not an error.
	CatalogForRole(ctx context.Context, roleID int) (map[string]dto.PermissionFlags, error)

	RolePermissions(ctx context.Context, roleID int) ([]dto.PermissionRow, error)
	RoleModulePermissions(ctx context.Context, roleID, moduleID int) ([]dto.PermissionRow, error)
	AccessibleModules(ctx context.Context, roleID int) ([]int, error)

	// HasModuleAccess is an existence check: a permission row with all five
	// flags false still grants module access. Callers relying on flag
	// semantics must use HasCapability instead.
	HasModuleAccess(ctx context.Context, user *entity.User, moduleID int) (bool, error)

	// HasCapability checks one named capability (Ver, Crear, Editar,
	// Eliminar, Descargar). Unknown names evaluate to false.
	HasCapability(ctx context.Context, user *entity.User, moduleID int, capability string) (bool, error)

	CheckUserModuleAccess(ctx context.Context, userID, moduleID int) (bool, error)
	CheckUserCapability(ctx context.Context, userID, moduleID int, capability string) (bool, error)

	Assign(ctx context.Context, req *dto.AssignPermissionRequest) (*dto.PermissionRow, error)
	Remove(ctx context.Context, id int) error
}

type permissionUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	permissionRepo repository.PermissionRepository
	roleRepo       repository.RoleRepository
	moduleRepo     repository.ModuleRepository
	userRepo       repository.UserRepository
}

func NewPermissionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	permissionRepo repository.PermissionRepository,
	roleRepo repository.RoleRepository,
	moduleRepo repository.ModuleRepository,
	userRepo repository.UserRepository,
) PermissionUsecase {
	return &permissionUsecase{
		db:             db,
		log:            log,
		permissionRepo: permissionRepo,
		roleRepo:       roleRepo,
		moduleRepo:     moduleRepo,
		userRepo:       userRepo,
	}
}

func (u *permissionUsecase) CatalogForRole(ctx context.Context, roleID int) (map[string]dto.PermissionFlags, error) {
	permissions, err := u.permissionRepo.FindByRoleID(u.db, roleID)
	if err != nil {
		u.log.Warnf("Failed to load permissions for role %d: %+v", roleID, err)
		return nil, err
	}
	return converter.PermissionsToCatalog(permissions), nil
}

func (u *permissionUsecase) RolePermissions(ctx context.Context, roleID int) ([]dto.PermissionRow, error) {
	role, err := u.roleRepo.FindByID(u.db, roleID)
	if err != nil {
		u.log.Warnf("Failed to find role %d: %+v", roleID, err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	permissions, err := u.permissionRepo.FindByRoleID(u.db, roleID)
	if err != nil {
		u.log.Warnf("Failed to load permissions for role %d: %+v", roleID, err)
		return nil, err
	}
	return converter.PermissionsToRows(permissions), nil
}

func (u *permissionUsecase) RoleModulePermissions(ctx context.Context, roleID, moduleID int) ([]dto.PermissionRow, error) {
	permissions, err := u.permissionRepo.FindByRoleAndModule(u.db, roleID, moduleID)
	if err != nil {
		u.log.Warnf("Failed to load permissions for role %d module %d: %+v", roleID, moduleID, err)
		return nil, err
	}
	return converter.PermissionsToRows(permissions), nil
}

func (u *permissionUsecase) AccessibleModules(ctx context.Context, roleID int) ([]int, error) {
	moduleIDs, err := u.permissionRepo.FindModuleIDsByRole(u.db, roleID)
	if err != nil {
		u.log.Warnf("Failed to load accessible modules for role %d: %+v", roleID, err)
		return nil, err
	}
	return moduleIDs, nil
}

func (u *permissionUsecase) HasModuleAccess(ctx context.Context, user *entity.User, moduleID int) (bool, error) {
	if user == nil || user.RoleID == 0 {
		return false, nil
	}

	permissions, err := u.permissionRepo.FindByRoleAndModule(u.db, user.RoleID, moduleID)
	if err != nil {
		u.log.Warnf("Failed to check module access for user %d: %+v", user.ID, err)
		return false, err
	}
	return len(permissions) > 0, nil
}

func (u *permissionUsecase) HasCapability(ctx context.Context, user *entity.User, moduleID int, capability string) (bool, error) {
	if user == nil || user.RoleID == 0 {
		return false, nil
	}

	permissions, err := u.permissionRepo.FindByRoleAndModule(u.db, user.RoleID, moduleID)
	if err != nil {
		u.log.Warnf("Failed to check capability for user %d: %+v", user.ID, err)
		return false, err
	}

	for i := range permissions {
		if permissions[i].HasCapability(capability) {
			return true, nil
		}
	}
	return false, nil
}

func (u *permissionUsecase) CheckUserModuleAccess(ctx context.Context, userID, moduleID int) (bool, error) {
	user, err := u.userRepo.FindByID(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return false, err
	}
	if user == nil {
		return false, ErrUserNotFound
	}
	return u.HasModuleAccess(ctx, user, moduleID)
}

func (u *permissionUsecase) CheckUserCapability(ctx context.Context, userID, moduleID int, capability string) (bool, error) {
	user, err := u.userRepo.FindByID(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return false, err
	}
	if user == nil {
		return false, ErrUserNotFound
	}
	return u.HasCapability(ctx, user, moduleID, capability)
}

func (u *permissionUsecase) Assign(ctx context.Context, req *dto.AssignPermissionRequest) (*dto.PermissionRow, error) {
	role, err := u.roleRepo.FindByID(u.db, req.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	module, err := u.moduleRepo.FindByID(u.db, req.ModuleID)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, ErrModuleNotFound
	}

	permission := &entity.Permission{
		RoleID:      req.RoleID,
		ModuleID:    req.ModuleID,
		CanView:     req.View,
		CanCreate:   req.Create,
		CanEdit:     req.Edit,
		CanDelete:   req.Delete,
		CanDownload: req.Download,
	}

	if err := u.permissionRepo.Create(u.db, permission); err != nil {
		u.log.Warnf("Failed to assign permission: %+v", err)
		return nil, err
	}

	permission.Module = *module
	return converter.PermissionToRow(permission), nil
}

func (u *permissionUsecase) Remove(ctx context.Context, id int) error {
	permission, err := u.permissionRepo.FindByID(u.db, id)
	if err != nil {
		return err
	}
	if permission == nil {
		return ErrPermissionNotFound
	}
	return u.permissionRepo.Delete(u.db, id)
}
