package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/usecase"
	"medicit-backend/pkg/response"
	"medicit-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login handles the consolidated login
// @Summary Login user
// @Description Login with username and password, returning the user profile and the full permission matrix of its role
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Error(w, http.StatusUnauthorized, "Invalid username or password", nil)
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	// The consolidated payload is the response body itself, without the
	// generic envelope, so clients can read userData at the top level.
	response.JSON(w, http.StatusOK, profile)
}

// Consolidate rebuilds the consolidated profile of a known user
// @Summary Refresh consolidated profile
// @Description Rebuild the profile and permission matrix for a user without re-authenticating
// @Tags Auth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.LoginResponse
// @Failure 404 {object} response.Response
// @Router /auth/usuario/{id} [get]
func (h *AuthHandler) Consolidate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	profile, err := h.authUsecase.Consolidate(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to build profile")
		}
		return
	}

	response.JSON(w, http.StatusOK, profile)
}
