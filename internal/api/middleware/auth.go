package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HandleAuth checks the provider access token the way the real API does:
// a bearer token on every call. The simulator accepts exactly one
// configured token; there is no account model behind it.
func HandleAuth(accessToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token != accessToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": http.StatusUnauthorized,
				"msg":  "invalid access token",
			})
			return
		}

		c.Next()
	}
}
