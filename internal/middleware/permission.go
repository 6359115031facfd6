package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillcms/quill-backend/internal/auth"
	"github.com/quillcms/quill-backend/internal/common"
)

const scopeKey = "auth_scope"

// RequirePermission authorizes the request against the permission matrix.
// It must run after JWTAuth. On success the resolved tenant scope is
// stored in context; handlers read it with GetScope and must use its
// OrganizationID for every query.
func RequirePermission(evaluator auth.Evaluator, resource auth.Resource, action auth.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, err := evaluator.Authorize(GetPrincipal(c), resource, action)
		if err != nil {
			if errors.Is(err, common.ErrUnauthenticated) {
				common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", err)
			} else {
				common.ErrorResponse(c, http.StatusForbidden, "Permission denied", err)
			}
			c.Abort()
			return
		}

		c.Set(scopeKey, scope)
		c.Next()
	}
}

// GetScope extracts the authorized tenant scope from context. It is only
// present after RequirePermission succeeded.
func GetScope(c *gin.Context) *auth.Scope {
	v, exists := c.Get(scopeKey)
	if !exists {
		return nil
	}
	if s, ok := v.(*auth.Scope); ok {
		return s
	}
	return nil
}
