package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/washify/booking/internal/domain"
	"github.com/washify/booking/internal/service/auth"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service auth.AuthUseCase
	log     *zap.SugaredLogger
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

func NewAuthHandler(service auth.AuthUseCase, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{service: service, log: log}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/login", h.login)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	admin, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong credentials"})
			return
		}
		h.log.Errorw("admin login failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		ID:    admin.ID,
		Email: admin.Email,
		Role:  admin.Role,
		Token: token,
	})
}
