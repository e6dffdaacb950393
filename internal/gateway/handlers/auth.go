package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotelops-dashboard/internal/backend"
	"hotelops-dashboard/internal/gateway/middleware"
	"hotelops-dashboard/internal/utils"
)

type AuthHTTPHandler struct {
	base
	tokens *utils.TokenManager
}

func NewAuthHTTPHandler(deps Deps, tokens *utils.TokenManager) *AuthHTTPHandler {
	return &AuthHTTPHandler{base: base{deps}, tokens: tokens}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges staff credentials for a backend token, keeps that token in
// the session store and hands the browser a dashboard JWT instead.
func (h *AuthHTTPHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	res, err := h.API.Login(ctx, backend.Credentials{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) || errors.Is(err, backend.ErrBadRequest) {
			c.JSON(http.StatusUnauthorized, errorResponse(messageOr(err, "Invalid email or password")))
			return
		}
		h.handleBackendError(c, err, "Login failed")
		return
	}

	sessionID := uuid.NewString()
	if err := h.Sessions.Save(ctx, sessionID, res.Token, h.tokens.TTL()); err != nil {
		log.Printf("failed to store session: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to start session"))
		return
	}

	username := res.User.Email
	if username == "" {
		username = req.Email
	}
	token, expiresAt, err := h.tokens.GenerateToken(sessionID, username, res.User.Role)
	if err != nil {
		log.Printf("failed to sign token: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to start session"))
		return
	}

	log.Printf("✅ %s logged in", username)
	c.JSON(http.StatusOK, successResponse("Login successful", gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"user":       res.User,
	}))
}

func (h *AuthHTTPHandler) Logout(c *gin.Context) {
	sid := c.GetString(middleware.SessionIDKey)
	if err := h.Sessions.Delete(c.Request.Context(), sid); err != nil {
		log.Printf("failed to drop session %s: %v", sid, err)
		c.JSON(http.StatusInternalServerError, errorResponse("Logout failed"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Logged out", nil))
}

func (h *AuthHTTPHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse("Session is active", gin.H{
		"username": c.GetString(middleware.UsernameKey),
		"role":     c.GetString(middleware.RoleKey),
	}))
}
