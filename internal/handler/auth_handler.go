package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"github.com/quillcms/quill-backend/internal/middleware"
	"github.com/quillcms/quill-backend/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges email/password for a JWT token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LoginRequest  true  "credentials"
// @Success      200  {object}  common.APIResponse{data=domain.LoginResponse}
// @Failure      401  {object}  common.APIResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.Login(&req)
	if errors.Is(err, common.ErrInvalidCredentials) {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=domain.User}
// @Failure      401  {object}  common.APIResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	user, err := h.service.GetUser(principal.UserID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	common.SuccessResponse(c, user, nil)
}
