package controllers

import (
	"mindcare/internal/models"
	"mindcare/internal/providers"
	"mindcare/internal/services"
	"net/http"
)

const (
	maxListLimit = 1000
	maxStatsDays = 365
)

type MoodController struct {
	logger  providers.Logger
	service services.MoodServiceInterface
}

func NewMoodController(logger providers.Logger, service services.MoodServiceInterface) *MoodController {
	return &MoodController{logger: logger, service: service}
}

func (mc *MoodController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.MoodCreateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	entry, err := mc.service.Create(r.Context(), ownerID(r), &in)
	if err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (mc *MoodController) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", services.DefaultListLimit, 1, maxListLimit)
	if err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	start, end, err := queryRange(r)
	if err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	entries, err := mc.service.List(r.Context(), ownerID(r), limit, start, end)
	if err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (mc *MoodController) Stats(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", services.DefaultStatsDays, 1, maxStatsDays)
	if err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	stats, err := mc.service.Statistics(r.Context(), ownerID(r), days)
	if err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (mc *MoodController) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := mc.service.Get(r.Context(), ownerID(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (mc *MoodController) Update(w http.ResponseWriter, r *http.Request) {
	var in models.MoodUpdateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	entry, err := mc.service.Update(r.Context(), ownerID(r), r.PathValue("id"), &in)
	if err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (mc *MoodController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := mc.service.Delete(r.Context(), ownerID(r), r.PathValue("id")); err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
