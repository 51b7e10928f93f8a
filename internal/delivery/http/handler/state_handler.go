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

type StateHandler struct {
	stateUsecase usecase.StateUsecase
	validator    *validator.CustomValidator
}

func NewStateHandler(stateUsecase usecase.StateUsecase, validator *validator.CustomValidator) *StateHandler {
	return &StateHandler{
		stateUsecase: stateUsecase,
		validator:    validator,
	}
}

// Create adds a lifecycle state
// @Summary Create a state
// @Tags States
// @Accept json
// @Produce json
// @Param request body dto.StateRequest true "State Request"
// @Success 201 {object} response.Response
// @Router /estados [post]
func (h *StateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := h.stateUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create state")
		return
	}

	response.Success(w, http.StatusCreated, "State created", state)
}

// GetAll lists states
// @Summary List states
// @Tags States
// @Produce json
// @Success 200 {object} response.Response
// @Router /estados [get]
func (h *StateHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	states, err := h.stateUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list states")
		return
	}

	response.Success(w, http.StatusOK, "States retrieved", states)
}

// GetByID returns one state
// @Summary Get a state
// @Tags States
// @Produce json
// @Param id path int true "State ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /estados/{id} [get]
func (h *StateHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid state ID")
		return
	}

	state, err := h.stateUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrStateNotFound:
			response.NotFound(w, "State not found")
		default:
			response.InternalServerError(w, "Failed to get state")
		}
		return
	}

	response.Success(w, http.StatusOK, "State retrieved", state)
}

// Update modifies a state
// @Summary Update a state
// @Tags States
// @Accept json
// @Produce json
// @Param id path int true "State ID"
// @Param request body dto.StateRequest true "State Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /estados/{id} [put]
func (h *StateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid state ID")
		return
	}

	var req dto.StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := h.stateUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrStateNotFound:
			response.NotFound(w, "State not found")
		default:
			response.InternalServerError(w, "Failed to update state")
		}
		return
	}

	response.Success(w, http.StatusOK, "State updated", state)
}

// Delete removes a state
// @Summary Delete a state
// @Tags States
// @Produce json
// @Param id path int true "State ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /estados/{id} [delete]
func (h *StateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid state ID")
		return
	}

	if err := h.stateUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrStateNotFound:
			response.NotFound(w, "State not found")
		case usecase.ErrStateInUse:
			response.Conflict(w, "State is referenced by users or appointments")
		default:
			response.InternalServerError(w, "Failed to delete state")
		}
		return
	}

	response.Success(w, http.StatusOK, "State deleted", nil)
}
