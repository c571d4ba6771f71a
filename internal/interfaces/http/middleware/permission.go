package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/saase/requesthub/internal/shared/constants"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/utils"
)

// RequireRole must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyRole)
		if role == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
			c.Abort()
			return
		}

		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		utils.ErrorResponseWithError(c, errors.NewForbiddenError("insufficient permissions"))
		c.Abort()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(constants.RoleAdmin)
}
