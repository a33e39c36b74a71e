package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"garagehub/services/user"
	"garagehub/utils"
)

// AuthHandler serves account registration and login.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterHandler creates an account and returns a signed token.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input user.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload", "details": err.Error()})
		return
	}

	account, token, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		utils.GetLogger().Warn("registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": account, "token": token})
}

// LoginHandler verifies credentials and returns a signed token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload", "details": err.Error()})
		return
	}

	account, token, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Server error.", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": account, "token": token})
}

// MeHandler returns the authenticated caller's account.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	account, err := h.Service.GetByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Server error.", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": account})
}
