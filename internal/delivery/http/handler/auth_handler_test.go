package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/usecase"
	"medicit-backend/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthUsecase struct {
	resp *dto.LoginResponse
	err  error
}

func (f *fakeAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.resp, f.err
}

func (f *fakeAuthUsecase) Consolidate(ctx context.Context, userID int) (*dto.LoginResponse, error) {
	return f.resp, f.err
}

func newAuthRouter(uc usecase.AuthUsecase) *mux.Router {
	h := NewAuthHandler(uc, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/api/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/usuario/{id}", h.Consolidate).Methods(http.MethodGet)
	return r
}

func consolidatedProfileFixture() *dto.LoginResponse {
	return &dto.LoginResponse{
		Success: true,
		UserData: &dto.ConsolidatedProfile{
			ID:        7,
			Email:     "jlopez@medicit.app",
			Username:  "jlopez",
			FirstName: "Juana",
			LastName:  "Lopez",
			RoleID:    2,
			RoleName:  "Medico",
			Permissions: map[string]dto.PermissionFlags{
				"citas": {View: true, Create: true},
			},
		},
	}
}

func TestLoginHandler_Success(t *testing.T) {
	router := newAuthRouter(&fakeAuthUsecase{resp: consolidatedProfileFixture()})

	body := `{"nombreUsuario":"jlopez","contrasenia":"secreto123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload, "success")
	require.Contains(t, payload, "userData")

	var userData map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload["userData"], &userData))
	for _, field := range []string{"id_usuario", "correo", "nombre_usuario", "nombres", "apellidos", "id_rol", "nombre_rol", "permisos"} {
		assert.Contains(t, userData, field)
	}
	assert.NotContains(t, userData, "contrasenia")
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	router := newAuthRouter(&fakeAuthUsecase{err: usecase.ErrInvalidCredentials})

	body := `{"nombreUsuario":"jlopez","contrasenia":"mal"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestLoginHandler_ValidationFailure(t *testing.T) {
	router := newAuthRouter(&fakeAuthUsecase{resp: consolidatedProfileFixture()})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"nombreUsuario":"jlopez"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConsolidateHandler_NotFound(t *testing.T) {
	router := newAuthRouter(&fakeAuthUsecase{err: usecase.ErrUserNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/usuario/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
