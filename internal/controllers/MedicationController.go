package controllers

import (
	"errors"
	"fmt"
	"io"
	"mindcare/internal/models"
	"mindcare/internal/providers"
	"mindcare/internal/services"
	"net/http"
)

const multipartOverhead = 64 << 10

type MedicationController struct {
	logger  providers.Logger
	service services.MedicationServiceInterface
}

type imageResponse struct {
	ImageURL string `json:"image_url"`
}

func NewMedicationController(logger providers.Logger, service services.MedicationServiceInterface) *MedicationController {
	return &MedicationController{logger: logger, service: service}
}

func (mc *MedicationController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.MedicationInput
	if !decodeJSON(w, r, &in) {
		return
	}
	med, err := mc.service.Create(r.Context(), ownerID(r), &in)
	if err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, med)
}

func (mc *MedicationController) List(w http.ResponseWriter, r *http.Request) {
	meds, err := mc.service.List(r.Context(), ownerID(r), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, meds)
}

func (mc *MedicationController) Get(w http.ResponseWriter, r *http.Request) {
	med, err := mc.service.Get(r.Context(), ownerID(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, med)
}

func (mc *MedicationController) Update(w http.ResponseWriter, r *http.Request) {
	var in models.MedicationUpdateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	med, err := mc.service.Update(r.Context(), ownerID(r), r.PathValue("id"), &in)
	if err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, med)
}

func (mc *MedicationController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := mc.service.Delete(r.Context(), ownerID(r), r.PathValue("id")); err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadImage accepts a multipart form with the photo in the "file" field.
func (mc *MedicationController) UploadImage(w http.ResponseWriter, r *http.Request) {
	limit := mc.service.MaxImageBytes()
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	file, _, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeDetail(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d bytes", limit))
			return
		}
		writeError(w, r, mc.logger, models.NewValidationError("file", "multipart field file is required"))
		return
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Unable to read file")
		return
	}

	med, err := mc.service.UploadImage(r.Context(), ownerID(r), r.PathValue("id"), body)
	if err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, imageResponse{ImageURL: *med.ImageURL})
}
