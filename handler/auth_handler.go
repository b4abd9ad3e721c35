package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authpkg "github.com/natenaltsega2225/AbeGarage-Backend/auth"
)

// AuthHandler bundles dependencies for authentication HTTP handlers.
type AuthHandler struct {
	service authpkg.Service
}

func NewAuthHandler(svc authpkg.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

type loginPayload struct {
	Email    string `json:"employee_email" binding:"required"`
	Password string `json:"employee_password" binding:"required"`
}

// Login exchanges employee credentials for a signed token.
func (h *AuthHandler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p loginPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		principal, err := h.service.Login(ctx, authpkg.LoginRequest{Email: p.Email, Password: p.Password})
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "login successful", "employee": principal})
	}
}
