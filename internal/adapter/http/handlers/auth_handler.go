package handlers

import (
	"net/http"

	request "assistente_juridico/internal/adapter/http/dto/request"
	response "assistente_juridico/internal/adapter/http/dto/response"
	"assistente_juridico/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary  Sign in
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.LoginRequest true "credentials"
// @Success  200 {object} response.SessionResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  401 {object} pkg.HTTPError
// @Router   /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	s, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		zap.L().Info("[auth][handler] login failed", zap.Error(err))
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s.Token, s.ExpiresAt, s.Identity, s.Lawyer))
}

// StartDemo godoc
// @Summary  Start a demo session (Vademecum only)
// @Tags     auth
// @Produce  json
// @Success  200 {object} response.SessionResponse
// @Router   /v1/auth/demo [post]
func (h *AuthHandler) StartDemo(c *gin.Context) {
	s, err := h.usecase.StartDemo(c.Request.Context())
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s.Token, s.ExpiresAt, s.Identity, nil))
}
