package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/league-simulator/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginInput struct {
	Password string `json:"password"`
}

// Login godoc
// @Summary Issue an admin token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginInput true "Admin password"
// @Success 200 {object} services.TokenResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/token [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginInput

	err := readJSON(w, r, &input)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.Password == "" {
		badRequestResponse(w, r, errors.New("password is required"))
		return
	}

	token, err := h.authService.Login(r.Context(), input.Password)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	err = writeJSON(w, http.StatusOK, token, nil)
	if err != nil {
		serverErrorResponse(w, r, err)
	}
}
