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

type PermissionHandler struct {
	permissionUsecase usecase.PermissionUsecase
	validator         *validator.CustomValidator
}

func NewPermissionHandler(permissionUsecase usecase.PermissionUsecase, validator *validator.CustomValidator) *PermissionHandler {
	return &PermissionHandler{
		permissionUsecase: permissionUsecase,
		validator:         validator,
	}
}

// GetRoleCatalog returns the moduleName -> flags map of a role
// @Summary Permission catalog for a role
// @Tags Permissions
// @Produce json
// @Param idRol path int true "Role ID"
// @Success 200 {object} response.Response
// @Router /permisos/rol/{idRol}/catalogo [get]
func (h *PermissionHandler) GetRoleCatalog(w http.ResponseWriter, r *http.Request) {
	roleID, err := strconv.Atoi(mux.Vars(r)["idRol"])
	if err != nil {
		response.BadRequest(w, "Invalid role ID")
		return
	}

	catalog, err := h.permissionUsecase.CatalogForRole(r.Context(), roleID)
	if err != nil {
		response.InternalServerError(w, "Failed to load permission catalog")
		return
	}

	response.Success(w, http.StatusOK, "Permission catalog retrieved", catalog)
}

// GetRolePermissions lists the raw permission rows of a role
// @Summary Permission rows for a role
// @Tags Permissions
// @Produce json
// @Param idRol path int true "Role ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /permisos/rol/{idRol} [get]
func (h *PermissionHandler) GetRolePermissions(w http.ResponseWriter, r *http.Request) {
	roleID, err := strconv.Atoi(mux.Vars(r)["idRol"])
	if err != nil {
		response.BadRequest(w, "Invalid role ID")
		return
	}

	rows, err := h.permissionUsecase.RolePermissions(r.Context(), roleID)
	if err != nil {
		switch err {
		case usecase.ErrRoleNotFound:
			response.NotFound(w, "Role not found")
		default:
			response.InternalServerError(w, "Failed to load permissions")
		}
		return
	}

	response.Success(w, http.StatusOK, "Permissions retrieved", rows)
}

// GetRoleModulePermissions lists permission rows of a role scoped to a module
// @Summary Permission rows for a role and module
// @Tags Permissions
// @Produce json
// @Param idRol path int true "Role ID"
// @Param idModulo path int true "Module ID"
// @Success 200 {object} response.Response
// @Router /permisos/rol/{idRol}/modulo/{idModulo} [get]
func (h *PermissionHandler) GetRoleModulePermissions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roleID, err := strconv.Atoi(vars["idRol"])
	if err != nil {
		response.BadRequest(w, "Invalid role ID")
		return
	}
	moduleID, err := strconv.Atoi(vars["idModulo"])
	if err != nil {
		response.BadRequest(w, "Invalid module ID")
		return
	}

	rows, err := h.permissionUsecase.RoleModulePermissions(r.Context(), roleID, moduleID)
	if err != nil {
		response.InternalServerError(w, "Failed to load permissions")
		return
	}

	response.Success(w, http.StatusOK, "Permissions retrieved", rows)
}

// GetAccessibleModules lists the module IDs a role can reach
// @Summary Accessible modules for a role
// @Tags Permissions
// @Produce json
// @Param idRol path int true "Role ID"
// @Success 200 {object} response.Response
// @Router /permisos/rol/{idRol}/modulos-accesibles [get]
func (h *PermissionHandler) GetAccessibleModules(w http.ResponseWriter, r *http.Request) {
	roleID, err := strconv.Atoi(mux.Vars(r)["idRol"])
	if err != nil {
		response.BadRequest(w, "Invalid role ID")
		return
	}

	moduleIDs, err := h.permissionUsecase.AccessibleModules(r.Context(), roleID)
	if err != nil {
		response.InternalServerError(w, "Failed to load accessible modules")
		return
	}

	response.Success(w, http.StatusOK, "Accessible modules retrieved", moduleIDs)
}

// CheckModuleAccess answers whether a user can reach a module at all
// @Summary Check module access for a user
// @Tags Permissions
// @Produce json
// @Param idUsuario path int true "User ID"
// @Param idModulo path int true "Module ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /permisos/usuario/{idUsuario}/modulo/{idModulo}/acceso [get]
func (h *PermissionHandler) CheckModuleAccess(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["idUsuario"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}
	moduleID, err := strconv.Atoi(vars["idModulo"])
	if err != nil {
		response.BadRequest(w, "Invalid module ID")
		return
	}

	allowed, err := h.permissionUsecase.CheckUserModuleAccess(r.Context(), userID, moduleID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to check access")
		}
		return
	}

	response.Success(w, http.StatusOK, "Access evaluated", map[string]bool{"acceso": allowed})
}

// CheckCapability answers whether a user holds one named capability on a module
// @Summary Check a capability for a user on a module
// @Tags Permissions
// @Produce json
// @Param idUsuario path int true "User ID"
// @Param idModulo path int true "Module ID"
// @Param nombrePermiso path string true "Capability name (Ver, Crear, Editar, Eliminar, Descargar)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /permisos/usuario/{idUsuario}/modulo/{idModulo}/permiso/{nombrePermiso} [get]
func (h *PermissionHandler) CheckCapability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["idUsuario"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}
	moduleID, err := strconv.Atoi(vars["idModulo"])
	if err != nil {
		response.BadRequest(w, "Invalid module ID")
		return
	}

	allowed, err := h.permissionUsecase.CheckUserCapability(r.Context(), userID, moduleID, vars["nombrePermiso"])
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to check capability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Capability evaluated", map[string]bool{"permitido": allowed})
}

// Assign creates a permission row for a role on a module
// @Summary Assign a permission
// @Tags Permissions
// @Accept json
// @Produce json
// @Param request body dto.AssignPermissionRequest true "Assign Permission Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /permisos/asignar [post]
func (h *PermissionHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignPermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	row, err := h.permissionUsecase.Assign(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRoleNotFound:
			response.NotFound(w, "Role not found")
		case usecase.ErrModuleNotFound:
			response.NotFound(w, "Module not found")
		default:
			response.InternalServerError(w, "Failed to assign permission")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Permission assigned", row)
}

// Remove deletes a permission row by ID
// @Summary Remove a permission
// @Tags Permissions
// @Produce json
// @Param id path int true "Permission ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /permisos/{id} [delete]
func (h *PermissionHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid permission ID")
		return
	}

	if err := h.permissionUsecase.Remove(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrPermissionNotFound:
			response.NotFound(w, "Permission not found")
		default:
			response.InternalServerError(w, "Failed to remove permission")
		}
		return
	}

	response.Success(w, http.StatusOK, "Permission removed", nil)
}
