package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/domain/entity"
	"medicit-backend/internal/usecase"
	"medicit-backend/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePermissionUsecase struct {
	rows       []dto.PermissionRow
	catalog    map[string]dto.PermissionFlags
	moduleIDs  []int
	access     bool
	capability bool
	row        *dto.PermissionRow
	err        error
}

func (f *fakePermissionUsecase) CatalogForRole(ctx context.Context, roleID int) (map[string]dto.PermissionFlags, error) {
	return f.catalog, f.err
}
func (f *fakePermissionUsecase) RolePermissions(ctx context.Context, roleID int) ([]dto.PermissionRow, error) {
	return f.rows, f.err
}
func (f *fakePermissionUsecase) RoleModulePermissions(ctx context.Context, roleID, moduleID int) ([]dto.PermissionRow, error) {
	return f.rows, f.err
}
func (f *fakePermissionUsecase) AccessibleModules(ctx context.Context, roleID int) ([]int, error) {
	return f.moduleIDs, f.err
}
func (f *fakePermissionUsecase) HasModuleAccess(ctx context.Context, user *entity.User, moduleID int) (bool, error) {
	return f.access, f.err
}
func (f *fakePermissionUsecase) HasCapability(ctx context.Context, user *entity.User, moduleID int, capability string) (bool, error) {
	return f.capability, f.err
}
func (f *fakePermissionUsecase) CheckUserModuleAccess(ctx context.Context, userID, moduleID int) (bool, error) {
	return f.access, f.err
}
func (f *fakePermissionUsecase) CheckUserCapability(ctx context.Context, userID, moduleID int, capability string) (bool, error) {
	return f.capability, f.err
}
func (f *fakePermissionUsecase) Assign(ctx context.Context, req *dto.AssignPermissionRequest) (*dto.PermissionRow, error) {
	return f.row, f.err
}
func (f *fakePermissionUsecase) Remove(ctx context.Context, id int) error {
	return f.err
}

func newPermissionRouter(uc usecase.PermissionUsecase) *mux.Router {
	h := NewPermissionHandler(uc, validator.NewValidator())
	r := mux.NewRouter()
	p := r.PathPrefix("/api/permisos").Subrouter()
	p.HandleFunc("/rol/{idRol}", h.GetRolePermissions).Methods(http.MethodGet)
	p.HandleFunc("/usuario/{idUsuario}/modulo/{idModulo}/acceso", h.CheckModuleAccess).Methods(http.MethodGet)
	p.HandleFunc("/usuario/{idUsuario}/modulo/{idModulo}/permiso/{nombrePermiso}", h.CheckCapability).Methods(http.MethodGet)
	p.HandleFunc("/asignar", h.Assign).Methods(http.MethodPost)
	return r
}

func TestGetRolePermissions_RoleNotFound(t *testing.T) {
	router := newPermissionRouter(&fakePermissionUsecase{err: usecase.ErrRoleNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/permisos/rol/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckModuleAccess_ReturnsBool(t *testing.T) {
	router := newPermissionRouter(&fakePermissionUsecase{access: true})

	req := httptest.NewRequest(http.MethodGet, "/api/permisos/usuario/7/modulo/10/acceso", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Data map[string]bool `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, payload.Data["acceso"])
}

func TestCheckCapability_InvalidIDs(t *testing.T) {
	router := newPermissionRouter(&fakePermissionUsecase{capability: true})

	req := httptest.NewRequest(http.MethodGet, "/api/permisos/usuario/abc/modulo/10/permiso/Ver", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssign_ValidationFailure(t *testing.T) {
	router := newPermissionRouter(&fakePermissionUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/permisos/asignar", strings.NewReader(`{"ver":true}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
