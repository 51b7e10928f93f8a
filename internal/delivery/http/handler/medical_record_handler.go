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

type MedicalRecordHandler struct {
	medicalRecordUsecase usecase.MedicalRecordUsecase
	validator            *validator.CustomValidator
}

func NewMedicalRecordHandler(medicalRecordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		medicalRecordUsecase: medicalRecordUsecase,
		validator:            validator,
	}
}

// Create adds a medical-history entry
// @Summary Create a medical record
// @Tags MedicalRecords
// @Accept json
// @Produce json
// @Param request body dto.CreateMedicalRecordRequest true "Create Medical Record Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /antecedentes [post]
func (h *MedicalRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.medicalRecordUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to create medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created", record)
}

// GetAll lists every medical-history entry
// @Summary List medical records
// @Tags MedicalRecords
// @Produce json
// @Success 200 {object} response.Response
// @Router /antecedentes [get]
func (h *MedicalRecordHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.medicalRecordUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved", records)
}

// GetByID returns one medical-history entry
// @Summary Get a medical record
// @Tags MedicalRecords
// @Produce json
// @Param id path int true "Medical Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /antecedentes/{id} [get]
func (h *MedicalRecordHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medical record ID")
		return
	}

	record, err := h.medicalRecordUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		default:
			response.InternalServerError(w, "Failed to get medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved", record)
}

// GetByUser lists the medical history of one user
// @Summary List medical records for a user
// @Tags MedicalRecords
// @Produce json
// @Param idUsuario path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /antecedentes/usuario/{idUsuario} [get]
func (h *MedicalRecordHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(mux.Vars(r)["idUsuario"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	records, err := h.medicalRecordUsecase.GetByUser(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to list medical records")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved", records)
}

// Update modifies a medical-history entry
// @Summary Update a medical record
// @Tags MedicalRecords
// @Accept json
// @Produce json
// @Param id path int true "Medical Record ID"
// @Param request body dto.UpdateMedicalRecordRequest true "Update Medical Record Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /antecedentes/{id} [put]
func (h *MedicalRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medical record ID")
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.medicalRecordUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to update medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated", record)
}

// Delete removes a medical-history entry
// @Summary Delete a medical record
// @Tags MedicalRecords
// @Produce json
// @Param id path int true "Medical Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /antecedentes/{id} [delete]
func (h *MedicalRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medical record ID")
		return
	}

	if err := h.medicalRecordUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		default:
			response.InternalServerError(w, "Failed to delete medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record deleted", nil)
}
