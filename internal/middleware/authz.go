package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealpipeline/internal/authz"
)

// Require rejects the request unless the authenticated role may perform op.
// It runs after AuthMiddleware and never lets a handler partially apply an
// unauthorized operation.
func Require(op authz.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no role in context"})
			return
		}
		role, _ := v.(string)
		if !authz.Allowed(role, op) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
