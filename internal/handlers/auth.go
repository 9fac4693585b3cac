package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sawai-h/saas-rbac-api/internal/apperrors"
	"github.com/sawai-h/saas-rbac-api/internal/dto"
	"github.com/sawai-h/saas-rbac-api/internal/middleware"
	"github.com/sawai-h/saas-rbac-api/internal/services"
	"github.com/sawai-h/saas-rbac-api/internal/token"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	tokens      *token.Provider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, tokens *token.Provider) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
	}
}

// Signup registers a new user.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		Name     string `json:"name" binding:"required,min=1,max=255"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Signup(services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Login authenticates a user and issues an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	accessToken, err := h.tokens.Issue(user.ID)
	if err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": accessToken,
	})
}

// GetProfile returns the authenticated user's profile.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": dto.ToUserDTO(*user),
	})
}
