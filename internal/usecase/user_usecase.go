package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"medicit-backend/internal/converter"
	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/domain/entity"
	"medicit-backend/internal/domain/repository"
	"medicit-backend/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken          = errors.New("username already exists")
	ErrDUITaken               = errors.New("DUI already exists")
	ErrEmailTaken             = errors.New("email already exists")
	ErrStateNotFound          = errors.New("state not found")
	ErrInvalidBirthDate       = errors.New("invalid birth date, use YYYY-MM-DD")
	ErrInactiveStateMissing   = errors.New("inactive state is not configured")
	ErrNotDoctor              = errors.New("user does not hold the Medico role")
	ErrSpecialtyNotFound      = errors.New("specialty not found")
	ErrInvalidCurrentPassword = errors.New("current password is incorrect")
)

type UserUsecase interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id int) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]dto.UserResponse, error)
	UpdateUser(ctx context.Context, id int, req *dto.UpdateUserRequest) (*dto.UserResponse, error)

	// Deactivate is the only deletion this system knows: the user row is
	// moved to the state named "Inactivo" and never physically removed.
	Deactivate(ctx context.Context, id int) error

	ChangePassword(ctx context.Context, id int, req *dto.ChangePasswordRequest) error
	AssignSpecialties(ctx context.Context, id int, req *dto.AssignSpecialtiesRequest) (*dto.UserResponse, error)
	RemoveSpecialty(ctx context.Context, id, specialtyID int) (*dto.UserResponse, error)
}

type userUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	roleRepo          repository.RoleRepository
	stateRepo         repository.StateRepository
	specialtyRepo     repository.SpecialtyRepository
	emailRepo         repository.EmailRepository
	phoneRepo         repository.PhoneRepository
	credentialService service.CredentialService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	stateRepo repository.StateRepository,
	specialtyRepo repository.SpecialtyRepository,
	emailRepo repository.EmailRepository,
	phoneRepo repository.PhoneRepository,
	credentialService service.CredentialService,
) UserUsecase {
	return &userUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		roleRepo:          roleRepo,
		stateRepo:         stateRepo,
		specialtyRepo:     specialtyRepo,
		emailRepo:         emailRepo,
		phoneRepo:         phoneRepo,
		credentialService: credentialService,
	}
}

func (u *userUsecase) Register(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	role, err := u.roleRepo.FindByID(u.db, req.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	state, err := u.stateRepo.FindByID(u.db, req.StateID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrStateNotFound
	}

	if len(req.SpecialtyIDs) > 0 && role.Name != entity.RoleDoctor {
		return nil, ErrNotDoctor
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DUI:       req.DUI,
		BirthDate: birthDate,
		RoleID:    req.RoleID,
		StateID:   req.StateID,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "nombre_usuario") {
			return nil, ErrUsernameTaken
		}
		if isDuplicateKeyError(err, "dui") {
			return nil, ErrDUITaken
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.credentialService.Store(tx, user.ID, req.Password); err != nil {
		return nil, err
	}

	email := &entity.Email{UserID: user.ID, Address: req.Email, IsPrimary: true}
	if err := u.emailRepo.Create(tx, email); err != nil {
		if isDuplicateKeyError(err, "correo") {
			return nil, ErrEmailTaken
		}
		u.log.Warnf("Failed to create email: %+v", err)
		return nil, err
	}

	phone := &entity.Phone{UserID: user.ID, Number: req.Phone, IsPrimary: true}
	if err := u.phoneRepo.Create(tx, phone); err != nil {
		u.log.Warnf("Failed to create phone: %+v", err)
		return nil, err
	}

	var specialties []entity.Specialty
	if len(req.SpecialtyIDs) > 0 {
		specialties, err = u.specialtyRepo.FindByIDs(tx, req.SpecialtyIDs)
		if err != nil {
			return nil, err
		}
		if len(specialties) != len(req.SpecialtyIDs) {
			return nil, ErrSpecialtyNotFound
		}
		if err := u.userRepo.ReplaceSpecialties(tx, user, specialties); err != nil {
			u.log.Warnf("Failed to assign specialties: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	user.Role = *role
	user.State = *state
	user.Emails = []entity.Email{*email}
	user.Phones = []entity.Phone{*phone}
	user.Specialties = specialties
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetUser(ctx context.Context, id int) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetAllUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}
	return converter.UsersToResponse(users), nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, id int, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.DUI != nil {
		user.DUI = req.DUI
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, ErrInvalidBirthDate
		}
		user.BirthDate = birthDate
	}
	if req.RoleID != nil {
		role, err := u.roleRepo.FindByID(u.db, *req.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, ErrRoleNotFound
		}
		user.RoleID = *req.RoleID
		user.Role = *role
	}
	if req.StateID != nil {
		state, err := u.stateRepo.FindByID(u.db, *req.StateID)
		if err != nil {
			return nil, err
		}
		if state == nil {
			return nil, ErrStateNotFound
		}
		user.StateID = *req.StateID
		user.State = *state
	}

	if err := u.userRepo.Update(u.db, user); err != nil {
		if isDuplicateKeyError(err, "nombre_usuario") {
			return nil, ErrUsernameTaken
		}
		if isDuplicateKeyError(err, "dui") {
			return nil, ErrDUITaken
		}
		u.log.Warnf("Failed to update user %d: %+v", id, err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Deactivate(ctx context.Context, id int) error {
	user, err := u.userRepo.FindByID(u.db, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	inactive, err := u.stateRepo.FindByName(u.db, entity.StateInactive)
	if err != nil {
		return err
	}
	if inactive == nil {
		u.log.Warnf("State %q is missing, cannot deactivate user %d", entity.StateInactive, id)
		return ErrInactiveStateMissing
	}

	user.StateID = inactive.ID
	user.State = *inactive
	return u.userRepo.Update(u.db, user)
}

func (u *userUsecase) ChangePassword(ctx context.Context, id int, req *dto.ChangePasswordRequest) error {
	user, err := u.userRepo.FindByID(u.db, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !u.credentialService.Verify(u.db, user.ID, req.CurrentPassword) {
		return ErrInvalidCurrentPassword
	}

	return u.credentialService.Store(u.db, user.ID, req.NewPassword)
}

func (u *userUsecase) AssignSpecialties(ctx context.Context, id int, req *dto.AssignSpecialtiesRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role.Name != entity.RoleDoctor {
		return nil, ErrNotDoctor
	}

	requested, err := u.specialtyRepo.FindByIDs(u.db, req.SpecialtyIDs)
	if err != nil {
		return nil, err
	}
	if len(requested) != len(req.SpecialtyIDs) {
		return nil, ErrSpecialtyNotFound
	}

	// Merge with the existing assignment, skipping duplicates.
	merged := append([]entity.Specialty{}, user.Specialties...)
	for _, s := range requested {
		exists := false
		for _, have := range merged {
			if have.ID == s.ID {
				exists = true
				break
			}
		}
		if !exists {
			merged = append(merged, s)
		}
	}

	if err := u.userRepo.ReplaceSpecialties(u.db, user, merged); err != nil {
		u.log.Warnf("Failed to assign specialties to user %d: %+v", id, err)
		return nil, err
	}

	user.Specialties = merged
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) RemoveSpecialty(ctx context.Context, id, specialtyID int) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if len(user.Specialties) == 0 {
		return nil, ErrSpecialtyNotFound
	}

	remaining := make([]entity.Specialty, 0, len(user.Specialties))
	for _, s := range user.Specialties {
		if s.ID != specialtyID {
			remaining = append(remaining, s)
		}
	}
	if len(remaining) == len(user.Specialties) {
		return nil, ErrSpecialtyNotFound
	}

	if err := u.userRepo.ReplaceSpecialties(u.db, user, remaining); err != nil {
		u.log.Warnf("Failed to remove specialty %d from user %d: %+v", specialtyID, id, err)
		return nil, err
	}

	user.Specialties = remaining
	return converter.UserToResponse(user), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
