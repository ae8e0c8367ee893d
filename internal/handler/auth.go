package handler

import (
	"errors"
	"net/http"

	"meetwise/internal/logger"
	"meetwise/internal/middleware"
	"meetwise/internal/model"
	"meetwise/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth   *service.AuthService
	secret []byte
}

func NewAuthHandler(auth *service.AuthService, secret []byte) *AuthHandler {
	return &AuthHandler{auth: auth, secret: secret}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	u, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		logger.Error("register.failed", "email", req.Email, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	logger.Info("register.ok", "uid", u.ID, "email", u.Email)
	h.respondWithToken(c, u)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	u, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrBadCredentials) {
			logger.Warn("login.failed", "email", req.Email)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		logger.Error("login.error", "email", req.Email, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	logger.Info("login.ok", "uid", u.ID, "email", u.Email)
	h.respondWithToken(c, u)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, u *model.User) {
	token, err := middleware.IssueToken(h.secret, u.ID, u.Email)
	if err != nil {
		logger.Error("token.sign failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token signing failed"})
		return
	}
	c.JSON(http.StatusOK, model.AuthResponse{Token: token, User: *u})
}
