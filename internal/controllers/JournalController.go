package controllers

import (
	"mindcare/internal/models"
	"mindcare/internal/providers"
	"mindcare/internal/services"
	"net/http"
)

type JournalController struct {
	logger  providers.Logger
	service services.JournalServiceInterface
}

func NewJournalController(logger providers.Logger, service services.JournalServiceInterface) *JournalController {
	return &JournalController{logger: logger, service: service}
}

func (jc *JournalController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.JournalCreateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	entry, err := jc.service.Create(r.Context(), ownerID(r), &in)
	if err != nil {
		writeError(w, r, jc.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (jc *JournalController) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", services.DefaultListLimit, 1, maxListLimit)
	if err != nil {
		writeError(w, r, jc.logger, err)
		return
	}
	start, end, err := queryRange(r)
	if err != nil {
		writeError(w, r, jc.logger, err)
		return
	}
	entries, err := jc.service.List(r.Context(), ownerID(r), limit, start, end)
	if err != nil {
		writeError(w, r, jc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (jc *JournalController) Search(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", services.DefaultListLimit, 1, maxListLimit)
	if err != nil {
		writeError(w, r, jc.logger, err)
		return
	}
	search := models.JournalSearch{
		Query: r.URL.Query().Get("query"),
		Tags:  queryList(r, "tags"),
		Limit: limit,
	}
	entries, err := jc.service.Search(r.Context(), ownerID(r), search)
	if err != nil {
		writeError(w, r, jc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (jc *JournalController) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := jc.service.Get(r.Context(), ownerID(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, jc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (jc *JournalController) Analyze(w http.ResponseWriter, r *http.Request) {
	analysis, err := jc.service.Analyze(r.Context(), ownerID(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, jc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (jc *JournalController) Update(w http.ResponseWriter, r *http.Request) {
	var in models.JournalUpdateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	entry, err := jc.service.Update(r.Context(), ownerID(r), r.PathValue("id"), &in)
	if err != nil {
		writeError(w, r, jc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (jc *JournalController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := jc.service.Delete(r.Context(), ownerID(r), r.PathValue("id")); err != nil {
		writeError(w, r, jc.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
