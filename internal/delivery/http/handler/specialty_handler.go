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

type SpecialtyHandler struct {
	specialtyUsecase usecase.SpecialtyUsecase
	validator        *validator.CustomValidator
}

func NewSpecialtyHandler(specialtyUsecase usecase.SpecialtyUsecase, validator *validator.CustomValidator) *SpecialtyHandler {
	return &SpecialtyHandler{
		specialtyUsecase: specialtyUsecase,
		validator:        validator,
	}
}

// Create adds a medical specialty
// @Summary Create a specialty
// @Tags Specialties
// @Accept json
// @Produce json
// @Param request body dto.SpecialtyRequest true "Specialty Request"
// @Success 201 {object} response.Response
// @Router /especialidades [post]
func (h *SpecialtyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SpecialtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialty, err := h.specialtyUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create specialty")
		return
	}

	response.Success(w, http.StatusCreated, "Specialty created", specialty)
}

// GetAll lists specialties
// @Summary List specialties
// @Tags Specialties
// @Produce json
// @Success 200 {object} response.Response
// @Router /especialidades [get]
func (h *SpecialtyHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.specialtyUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved", specialties)
}

// GetByID returns one specialty
// @Summary Get a specialty
// @Tags Specialties
// @Produce json
// @Param id path int true "Specialty ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /especialidades/{id} [get]
func (h *SpecialtyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid specialty ID")
		return
	}

	specialty, err := h.specialtyUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrSpecialtyNotFound:
			response.NotFound(w, "Specialty not found")
		default:
			response.InternalServerError(w, "Failed to get specialty")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialty retrieved", specialty)
}

// Update modifies a specialty
// @Summary Update a specialty
// @Tags Specialties
// @Accept json
// @Produce json
// @Param id path int true "Specialty ID"
// @Param request body dto.SpecialtyRequest true "Specialty Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /especialidades/{id} [put]
func (h *SpecialtyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid specialty ID")
		return
	}

	var req dto.SpecialtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialty, err := h.specialtyUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSpecialtyNotFound:
			response.NotFound(w, "Specialty not found")
		default:
			response.InternalServerError(w, "Failed to update specialty")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialty updated", specialty)
}

// Delete removes a specialty
// @Summary Delete a specialty
// @Tags Specialties
// @Produce json
// @Param id path int true "Specialty ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /especialidades/{id} [delete]
func (h *SpecialtyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid specialty ID")
		return
	}

	if err := h.specialtyUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrSpecialtyNotFound:
			response.NotFound(w, "Specialty not found")
		case usecase.ErrSpecialtyInUse:
			response.Conflict(w, "Specialty is assigned to users")
		default:
			response.InternalServerError(w, "Failed to delete specialty")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialty deleted", nil)
}
