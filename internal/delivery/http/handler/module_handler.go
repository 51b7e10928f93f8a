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

type ModuleHandler struct {
	moduleUsecase usecase.ModuleUsecase
	validator     *validator.CustomValidator
}

func NewModuleHandler(moduleUsecase usecase.ModuleUsecase, validator *validator.CustomValidator) *ModuleHandler {
	return &ModuleHandler{
		moduleUsecase: moduleUsecase,
		validator:     validator,
	}
}

// Create adds a module
// @Summary Create a module
// @Tags Modules
// @Accept json
// @Produce json
// @Param request body dto.ModuleRequest true "Module Request"
// @Success 201 {object} response.Response
// @Router /modulos [post]
func (h *ModuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	module, err := h.moduleUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create module")
		return
	}

	response.Success(w, http.StatusCreated, "Module created", module)
}

// GetAll lists modules, served from the catalog cache when warm
// @Summary List modules
// @Tags Modules
// @Produce json
// @Success 200 {object} response.Response
// @Router /modulos [get]
func (h *ModuleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	modules, err := h.moduleUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list modules")
		return
	}

	response.Success(w, http.StatusOK, "Modules retrieved", modules)
}

// GetByID returns one module
// @Summary Get a module
// @Tags Modules
// @Produce json
// @Param id path int true "Module ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /modulos/{id} [get]
func (h *ModuleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid module ID")
		return
	}

	module, err := h.moduleUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrModuleNotFound:
			response.NotFound(w, "Module not found")
		default:
			response.InternalServerError(w, "Failed to get module")
		}
		return
	}

	response.Success(w, http.StatusOK, "Module retrieved", module)
}

// Update modifies a module
// @Summary Update a module
// @Tags Modules
// @Accept json
// @Produce json
// @Param id path int true "Module ID"
// @Param request body dto.ModuleRequest true "Module Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /modulos/{id} [put]
func (h *ModuleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid module ID")
		return
	}

	var req dto.ModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	module, err := h.moduleUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrModuleNotFound:
			response.NotFound(w, "Module not found")
		default:
			response.InternalServerError(w, "Failed to update module")
		}
		return
	}

	response.Success(w, http.StatusOK, "Module updated", module)
}

// Delete removes a module
// @Summary Delete a module
// @Tags Modules
// @Produce json
// @Param id path int true "Module ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /modulos/{id} [delete]
func (h *ModuleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid module ID")
		return
	}

	if err := h.moduleUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrModuleNotFound:
			response.NotFound(w, "Module not found")
		case usecase.ErrModuleInUse:
			response.Conflict(w, "Module is referenced by permissions")
		default:
			response.InternalServerError(w, "Failed to delete module")
		}
		return
	}

	response.Success(w, http.StatusOK, "Module deleted", nil)
}
