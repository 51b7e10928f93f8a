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

type RoleHandler struct {
	roleUsecase usecase.RoleUsecase
	validator   *validator.CustomValidator
}

func NewRoleHandler(roleUsecase usecase.RoleUsecase, validator *validator.CustomValidator) *RoleHandler {
	return &RoleHandler{
		roleUsecase: roleUsecase,
		validator:   validator,
	}
}

// Create adds a role
// @Summary Create a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param request body dto.RoleRequest true "Role Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /roles [post]
func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	role, err := h.roleUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRoleNameTaken:
			response.Conflict(w, "Role name already exists")
		default:
			response.InternalServerError(w, "Failed to create role")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Role created", role)
}

// GetAll lists roles
// @Summary List roles
// @Tags Roles
// @Produce json
// @Success 200 {object} response.Response
// @Router /roles [get]
func (h *RoleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list roles")
		return
	}

	response.Success(w, http.StatusOK, "Roles retrieved", roles)
}

// GetByID returns one role
// @Summary Get a role
// @Tags Roles
// @Produce json
// @Param id path int true "Role ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /roles/{id} [get]
func (h *RoleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid role ID")
		return
	}

	role, err := h.roleUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrRoleNotFound:
			response.NotFound(w, "Role not found")
		default:
			response.InternalServerError(w, "Failed to get role")
		}
		return
	}

	response.Success(w, http.StatusOK, "Role retrieved", role)
}

// Update modifies a role
// @Summary Update a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path int true "Role ID"
// @Param request body dto.RoleRequest true "Role Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /roles/{id} [put]
func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid role ID")
		return
	}

	var req dto.RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	role, err := h.roleUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrRoleNotFound:
			response.NotFound(w, "Role not found")
		case usecase.ErrRoleNameTaken:
			response.Conflict(w, "Role name already exists")
		default:
			response.InternalServerError(w, "Failed to update role")
		}
		return
	}

	response.Success(w, http.StatusOK, "Role updated", role)
}

// Delete removes a role
// @Summary Delete a role
// @Tags Roles
// @Produce json
// @Param id path int true "Role ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /roles/{id} [delete]
func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid role ID")
		return
	}

	if err := h.roleUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrRoleNotFound:
			response.NotFound(w, "Role not found")
		case usecase.ErrRoleInUse:
			response.Conflict(w, "Role is referenced by users or permissions")
		default:
			response.InternalServerError(w, "Failed to delete role")
		}
		return
	}

	response.Success(w, http.StatusOK, "Role deleted", nil)
}
