package controllers

import (
	"mindcare/internal/models"
	"mindcare/internal/providers"
	"mindcare/internal/services"
	"net/http"
)

type ReminderController struct {
	logger  providers.Logger
	service services.ReminderServiceInterface
}

func NewReminderController(logger providers.Logger, service services.ReminderServiceInterface) *ReminderController {
	return &ReminderController{logger: logger, service: service}
}

func (rc *ReminderController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.ReminderInput
	if !decodeJSON(w, r, &in) {
		return
	}
	view, err := rc.service.Create(r.Context(), ownerID(r), &in)
	if err != nil {
		writeError(w, r, rc.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (rc *ReminderController) List(w http.ResponseWriter, r *http.Request) {
	start, end, err := queryRange(r)
	if err != nil {
		writeError(w, r, rc.logger, err)
		return
	}
	views, err := rc.service.List(r.Context(), ownerID(r), start, end)
	if err != nil {
		writeError(w, r, rc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (rc *ReminderController) Today(w http.ResponseWriter, r *http.Request) {
	views, err := rc.service.Today(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, rc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (rc *ReminderController) Upcoming(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", services.DefaultUpcomingDays, 1, services.MaxUpcomingDays)
	if err != nil {
		writeError(w, r, rc.logger, err)
		return
	}
	views, err := rc.service.Upcoming(r.Context(), ownerID(r), days)
	if err != nil {
		writeError(w, r, rc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (rc *ReminderController) Get(w http.ResponseWriter, r *http.Request) {
	view, err := rc.service.Get(r.Context(), ownerID(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, rc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (rc *ReminderController) Update(w http.ResponseWriter, r *http.Request) {
	var in models.ReminderUpdateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	view, err := rc.service.Update(r.Context(), ownerID(r), r.PathValue("id"), &in)
	if err != nil {
		writeError(w, r, rc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (rc *ReminderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var in models.ReminderStatusInput
	if !decodeJSON(w, r, &in) {
		return
	}
	view, err := rc.service.UpdateStatus(r.Context(), ownerID(r), r.PathValue("id"), &in)
	if err != nil {
		writeError(w, r, rc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (rc *ReminderController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := rc.service.Delete(r.Context(), ownerID(r), r.PathValue("id")); err != nil {
		writeError(w, r, rc.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
