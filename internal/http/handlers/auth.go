package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edusphere-backend/internal/http/response"
	"github.com/yungbote/edusphere-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /signup
func (ah *AuthHandler) Signup(c *gin.Context) {
	body := readBody(c)
	email := body.String("email")
	password := body.Raw("password")
	if email == "" || password == "" {
		response.RespondError(c, http.StatusBadRequest, services.ErrCredentialsRequired)
		return
	}
	uid, err := ah.authService.Signup(c.Request.Context(), email, password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondStatus(c, http.StatusCreated, gin.H{"uid": uid})
}

// POST /login
func (ah *AuthHandler) Login(c *gin.Context) {
	body := readBody(c)
	email := body.String("email")
	password := body.Raw("password")
	if email == "" || password == "" {
		response.RespondError(c, http.StatusBadRequest, services.ErrCredentialsRequired)
		return
	}
	res, err := ah.authService.Login(c.Request.Context(), email, password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	out := gin.H{"uid": res.UID}
	if res.AccessToken != "" {
		out["access_token"] = res.AccessToken
		out["expires_in"] = res.ExpiresIn
	}
	response.RespondOK(c, out)
}
