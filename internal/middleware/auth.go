package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quillcms/quill-backend/internal/auth"
	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/pkg/jwt"
)

const principalKey = "principal"

// JWTAuth JWT authentication middleware. Resolves the token into an
// auth.Principal and stores it in the request context.
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.ErrorResponse(c, 401, "Missing authorization header", nil)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.ErrorResponse(c, 401, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		claims, err := jwtManager.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Token expired", err)
			} else {
				common.ErrorResponse(c, 401, "Invalid token", err)
			}
			c.Abort()
			return
		}

		c.Set(principalKey, &auth.Principal{
			UserID:         claims.UserID,
			Email:          claims.Email,
			Role:           auth.Role(claims.Role),
			OrganizationID: claims.OrganizationID,
		})

		c.Next()
	}
}

// GetPrincipal extracts the authenticated principal from context; nil when
// the request is unauthenticated
func GetPrincipal(c *gin.Context) *auth.Principal {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	if p, ok := v.(*auth.Principal); ok {
		return p
	}
	return nil
}
