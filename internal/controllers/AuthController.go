package controllers

import (
	"mindcare/internal/models"
	"mindcare/internal/providers"
	"mindcare/internal/services"
	"net/http"
)

type AuthController struct {
	logger  providers.Logger
	service services.AuthServiceInterface
}

func NewAuthController(logger providers.Logger, service services.AuthServiceInterface) *AuthController {
	return &AuthController{logger: logger, service: service}
}

func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in models.RegisterInput
	if !decodeJSON(w, r, &in) {
		return
	}
	user, err := ac.service.Register(r.Context(), &in)
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, user.Public())
}

func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginInput
	if !decodeJSON(w, r, &in) {
		return
	}
	token, err := ac.service.Login(r.Context(), &in)
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, token)
}

func (ac *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	token, err := ac.service.Refresh(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, token)
}

func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, err := ac.service.Profile(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

func (ac *AuthController) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var in models.ProfileUpdateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	user, err := ac.service.UpdateProfile(r.Context(), ownerID(r), &in)
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

func (ac *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var in models.PasswordChangeInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if err := ac.service.ChangePassword(r.Context(), ownerID(r), &in); err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Password changed successfully"})
}
