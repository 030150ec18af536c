package controllers

import (
	"mindcare/internal/models"
	"mindcare/internal/providers"
	"mindcare/internal/services"
	"net/http"
)

type AIController struct {
	logger   providers.Logger
	chat     services.ChatServiceInterface
	insights services.InsightServiceInterface
}

func NewAIController(logger providers.Logger, chat services.ChatServiceInterface, insights services.InsightServiceInterface) *AIController {
	return &AIController{logger: logger, chat: chat, insights: insights}
}

func (ac *AIController) Chat(w http.ResponseWriter, r *http.Request) {
	var in models.ChatInput
	if !decodeJSON(w, r, &in) {
		return
	}
	resp, err := ac.chat.Chat(r.Context(), ownerID(r), &in)
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (ac *AIController) History(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", services.DefaultHistoryLimit, 1, services.MaxHistoryLimit)
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	history, err := ac.chat.History(r.Context(), ownerID(r), limit)
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (ac *AIController) Recommendations(w http.ResponseWriter, r *http.Request) {
	set, err := ac.insights.Recommendations(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

func (ac *AIController) Suggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := ac.insights.Suggestions(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}

func (ac *AIController) WeeklyReport(w http.ResponseWriter, r *http.Request) {
	report, err := ac.insights.WeeklyReport(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (ac *AIController) Feedback(w http.ResponseWriter, r *http.Request) {
	if _, err := ac.insights.SubmitFeedback(r.Context(), ownerID(r), r.URL.Query().Get("feedback")); err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Feedback submitted successfully"})
}
