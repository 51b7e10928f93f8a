package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doctorUserFixture() *entity.User {
	return &entity.User{
		ID:        7,
		Username:  "jlopez",
		FirstName: "Juana",
		LastName:  "Lopez",
		RoleID:    2,
		Role:      entity.Role{ID: 2, Name: entity.RoleDoctor},
		Emails: []entity.Email{
			{ID: 1, UserID: 7, Address: "old@medicit.app", IsPrimary: false},
			{ID: 2, UserID: 7, Address: "jlopez@medicit.app", IsPrimary: true},
		},
	}
}

func TestLogin_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[int]*entity.User{7: doctorUserFixture()}}
	permissionRepo := &fakePermissionRepo{}

	// Wrong password for a real user.
	uc := NewAuthUsecase(nil, testLogger(), userRepo, permissionRepo, &fakeCredentialService{verifyResult: false})
	_, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "jlopez", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown username yields the exact same error.
	_, err = uc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_ReturnsConsolidatedProfile(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[int]*entity.User{7: doctorUserFixture()}}
	permissionRepo := &fakePermissionRepo{rows: []entity.Permission{
		{ID: 1, RoleID: 2, ModuleID: 10, Module: entity.Module{ID: 10, Name: "citas"}, CanView: true, CanCreate: true, CanEdit: true},
		{ID: 2, RoleID: 2, ModuleID: 11, Module: entity.Module{ID: 11, Name: "expedientes"}, CanView: true, CanDownload: true},
	}}
	uc := NewAuthUsecase(nil, testLogger(), userRepo, permissionRepo, &fakeCredentialService{verifyResult: true})

	resp, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "jlopez", Password: "secret"})
	require.NoError(t, err)
	require.NotNil(t, resp.UserData)

	assert.True(t, resp.Success)
	assert.Equal(t, 7, resp.UserData.ID)
	assert.Equal(t, "jlopez", resp.UserData.Username)
	assert.Equal(t, "jlopez@medicit.app", resp.UserData.Email)
	assert.Equal(t, entity.RoleDoctor, resp.UserData.RoleName)

	require.Len(t, resp.UserData.Permissions, 2)
	assert.Equal(t, dto.PermissionFlags{View: true, Create: true, Edit: true}, resp.UserData.Permissions["citas"])
	assert.Equal(t, dto.PermissionFlags{View: true, Download: true}, resp.UserData.Permissions["expedientes"])
}

func TestLogin_ResponseNeverCarriesPasswordHash(t *testing.T) {
	user := doctorUserFixture()
	user.Credentials = []entity.Credential{
		{ID: 1, UserID: 7, Hash: "$2a$10$abcdefghijklmnopqrstuv", IsCurrent: true},
	}
	userRepo := &fakeUserRepo{users: map[int]*entity.User{7: user}}
	uc := NewAuthUsecase(nil, testLogger(), userRepo, &fakePermissionRepo{}, &fakeCredentialService{verifyResult: true})

	resp, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "jlopez", Password: "secret"})
	require.NoError(t, err)

	payload, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "$2a$10$")
	assert.NotContains(t, string(payload), "contrasenia")
}

func TestConsolidate(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[int]*entity.User{7: doctorUserFixture()}}
	permissionRepo := &fakePermissionRepo{rows: []entity.Permission{
		{ID: 1, RoleID: 2, ModuleID: 10, Module: entity.Module{ID: 10, Name: "citas"}, CanView: true},
	}}
	uc := NewAuthUsecase(nil, testLogger(), userRepo, permissionRepo, &fakeCredentialService{})

	resp, err := uc.Consolidate(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "jlopez", resp.UserData.Username)
	assert.True(t, resp.UserData.Permissions["citas"].View)

	_, err = uc.Consolidate(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
