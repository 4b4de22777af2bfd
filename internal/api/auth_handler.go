package api

import (
	"errors"

	"logisa-be/internal/user"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users user.Service
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "email and password are required")
		return
	}

	u, token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			Unauthorized(c, "invalid email or password")
			return
		}
		InternalError(c, "login failed")
		return
	}

	Success(c, gin.H{"token": token, "user": u})
}

// Profile returns the authenticated user with their company resolved.
func (h *AuthHandler) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	claims, _ := currentUser(c)

	u, err := h.users.Get(ctx, claims.ID)
	if err != nil {
		NotFound(c, "user not found")
		return
	}

	var company *user.Company
	if u.CompanyID != "" {
		company, _ = h.users.Company(ctx, u.CompanyID)
	}

	Success(c, gin.H{"user": u, "company": company})
}
