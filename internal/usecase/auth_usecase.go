package usecase

import (
	"context"
	"errors"

	"medicit-backend/internal/converter"
	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/domain/entity"
	"medicit-backend/internal/domain/repository"
	"medicit-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers unknown username, missing credential row
	// and wrong password alike, so a caller cannot enumerate usernames from
	// the response.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthUsecase resolves a username/password pair into one consolidated
// response: identity plus the materialized permission matrix of the user's
// role. No session state is kept server-side; clients refresh via Consolidate.
type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Consolidate(ctx context.Context, userID int) (*dto.LoginResponse, error)
}

type authUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	permissionRepo    repository.PermissionRepository
	credentialService service.CredentialService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	permissionRepo repository.PermissionRepository,
	credentialService service.CredentialService,
) AuthUsecase {
	return &authUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		permissionRepo:    permissionRepo,
		credentialService: credentialService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByUsername(u.db, req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !u.credentialService.Verify(u.db, user.ID, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return u.buildProfile(user)
}

func (u *authUsecase) Consolidate(ctx context.Context, userID int) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByID(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return u.buildProfile(user)
}

// buildProfile assembles the consolidated payload. The stored password hash
// never enters the profile.
func (u *authUsecase) buildProfile(user *entity.User) (*dto.LoginResponse, error) {
	permissions, err := u.permissionRepo.FindByRoleID(u.db, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to load permissions for role %d: %+v", user.RoleID, err)
		return nil, err
	}

	return &dto.LoginResponse{
		Success: true,
		UserData: &dto.ConsolidatedProfile{
			ID:          user.ID,
			Email:       user.PrimaryEmail(),
			Username:    user.Username,
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			RoleID:      user.RoleID,
			RoleName:    user.Role.Name,
			Permissions: converter.PermissionsToCatalog(permissions),
		},
	}, nil
}
