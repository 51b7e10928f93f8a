package usecase

import (
	"context"
	"testing"

	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPermissionUsecaseForTest(permissionRepo *fakePermissionRepo, roleRepo *fakeRoleRepo, moduleRepo *fakeModuleRepo, userRepo *fakeUserRepo) PermissionUsecase {
	if roleRepo == nil {
		roleRepo = &fakeRoleRepo{roles: map[int]*entity.Role{}}
	}
	if moduleRepo == nil {
		moduleRepo = &fakeModuleRepo{modules: map[int]*entity.Module{}}
	}
	if userRepo == nil {
		userRepo = &fakeUserRepo{users: map[int]*entity.User{}}
	}
	return NewPermissionUsecase(nil, testLogger(), permissionRepo, roleRepo, moduleRepo, userRepo)
}

func TestCatalogForRole_LastRowWinsPerModule(t *testing.T) {
	permissionRepo := &fakePermissionRepo{rows: []entity.Permission{
		{ID: 1, RoleID: 2, ModuleID: 10, Module: entity.Module{ID: 10, Name: "citas"}, CanView: true, CanCreate: true},
		{ID: 2, RoleID: 2, ModuleID: 10, Module: entity.Module{ID: 10, Name: "citas"}, CanView: true, CanDownload: true},
		{ID: 3, RoleID: 2, ModuleID: 11, Module: entity.Module{ID: 11, Name: "usuarios"}, CanView: true},
	}}
	uc := newPermissionUsecaseForTest(permissionRepo, nil, nil, nil)

	catalog, err := uc.CatalogForRole(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	// The later row for citas replaces the earlier one entirely.
	assert.Equal(t, dto.PermissionFlags{View: true, Download: true}, catalog["citas"])
	assert.Equal(t, dto.PermissionFlags{View: true}, catalog["usuarios"])
}

func TestCatalogForRole_AbsentRoleYieldsEmptyMap(t *testing.T) {
	uc := newPermissionUsecaseForTest(&fakePermissionRepo{}, nil, nil, nil)

	catalog, err := uc.CatalogForRole(context.Background(), 99)
	require.NoError(t, err)
	assert.NotNil(t, catalog)
	assert.Empty(t, catalog)
}

func TestRolePermissions_RoleNotFound(t *testing.T) {
	uc := newPermissionUsecaseForTest(&fakePermissionRepo{}, nil, nil, nil)

	_, err := uc.RolePermissions(context.Background(), 99)
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestHasModuleAccess_AllFalseFlagsStillGrantAccess(t *testing.T) {
	permissionRepo := &fakePermissionRepo{rows: []entity.Permission{
		{ID: 1, RoleID: 2, ModuleID: 10},
	}}
	uc := newPermissionUsecaseForTest(permissionRepo, nil, nil, nil)

	user := &entity.User{ID: 1, RoleID: 2}
	allowed, err := uc.HasModuleAccess(context.Background(), user, 10)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestHasModuleAccess_NilOrRolelessUser(t *testing.T) {
	uc := newPermissionUsecaseForTest(&fakePermissionRepo{}, nil, nil, nil)

	allowed, err := uc.HasModuleAccess(context.Background(), nil, 10)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = uc.HasModuleAccess(context.Background(), &entity.User{ID: 1}, 10)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestHasCapability(t *testing.T) {
	permissionRepo := &fakePermissionRepo{rows: []entity.Permission{
		{ID: 1, RoleID: 2, ModuleID: 10, CanView: true, CanDownload: true},
	}}
	uc := newPermissionUsecaseForTest(permissionRepo, nil, nil, nil)
	user := &entity.User{ID: 1, RoleID: 2}

	tests := []struct {
		capability string
		want       bool
	}{
		{entity.CapabilityView, true},
		{entity.CapabilityDownload, true},
		{entity.CapabilityCreate, false},
		{entity.CapabilityEdit, false},
		{entity.CapabilityDelete, false},
		{"Administrar", false},
		{"", false},
	}

	for _, tc := range tests {
		allowed, err := uc.HasCapability(context.Background(), user, 10, tc.capability)
		require.NoError(t, err)
		assert.Equal(t, tc.want, allowed, "capability %q", tc.capability)
	}
}

func TestCheckUserModuleAccess_UserNotFound(t *testing.T) {
	uc := newPermissionUsecaseForTest(&fakePermissionRepo{}, nil, nil, nil)

	_, err := uc.CheckUserModuleAccess(context.Background(), 42, 10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAccessibleModules_DistinctModuleIDs(t *testing.T) {
	permissionRepo := &fakePermissionRepo{rows: []entity.Permission{
		{ID: 1, RoleID: 2, ModuleID: 10},
		{ID: 2, RoleID: 2, ModuleID: 10},
		{ID: 3, RoleID: 2, ModuleID: 11},
		{ID: 4, RoleID: 3, ModuleID: 12},
	}}
	uc := newPermissionUsecaseForTest(permissionRepo, nil, nil, nil)

	moduleIDs, err := uc.AccessibleModules(context.Background(), 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{10, 11}, moduleIDs)
}

func TestAssign_ValidatesRoleAndModule(t *testing.T) {
	roleRepo := &fakeRoleRepo{roles: map[int]*entity.Role{
		2: {ID: 2, Name: entity.RoleDoctor},
	}}
	moduleRepo := &fakeModuleRepo{modules: map[int]*entity.Module{
		10: {ID: 10, Name: "citas"},
	}}
	permissionRepo := &fakePermissionRepo{}
	uc := newPermissionUsecaseForTest(permissionRepo, roleRepo, moduleRepo, nil)

	_, err := uc.Assign(context.Background(), &dto.AssignPermissionRequest{RoleID: 99, ModuleID: 10})
	assert.ErrorIs(t, err, ErrRoleNotFound)

	_, err = uc.Assign(context.Background(), &dto.AssignPermissionRequest{RoleID: 2, ModuleID: 99})
	assert.ErrorIs(t, err, ErrModuleNotFound)

	row, err := uc.Assign(context.Background(), &dto.AssignPermissionRequest{RoleID: 2, ModuleID: 10, View: true, Create: true})
	require.NoError(t, err)
	require.Len(t, permissionRepo.created, 1)
	assert.Equal(t, "citas", row.ModuleName)
	assert.True(t, row.View)
	assert.True(t, row.Create)
	assert.False(t, row.Delete)
}

func TestRemove_PermissionNotFound(t *testing.T) {
	permissionRepo := &fakePermissionRepo{rows: []entity.Permission{{ID: 1, RoleID: 2, ModuleID: 10}}}
	uc := newPermissionUsecaseForTest(permissionRepo, nil, nil, nil)

	err := uc.Remove(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPermissionNotFound)

	err = uc.Remove(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, permissionRepo.deleted)
}
