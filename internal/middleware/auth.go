package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qwarnma600-sudo/ecommerces/internal/auth"
)

// AuthRequired guards routes that act on a specific account. It verifies
// the Bearer token and stores the subject user ID in the gin context;
// handlers behind it trust "userID" and nothing from the request body.
func AuthRequired(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "errors": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "errors": "Invalid token format (must be Bearer)"})
			c.Abort()
			return
		}

		userID, err := issuer.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "errors": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
