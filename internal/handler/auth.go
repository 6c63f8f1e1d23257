package handler

import (
	"net/http"

	"github.com/templui/taskboard/internal/ctxkeys"
	"github.com/templui/taskboard/internal/model"
	"github.com/templui/taskboard/internal/response"
	"github.com/templui/taskboard/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in model.RegisterInput
	err := decodeJSON(w, r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.authService.Register(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, "User registered successfully", session)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in model.LoginInput
	err := decodeJSON(w, r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.authService.Login(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Login successful", session)
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Profile(r.Context(), ctxkeys.UserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "", user.Public())
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in model.ProfileInput
	err := decodeJSON(w, r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), ctxkeys.UserID(r.Context()), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", user.Public())
}
