package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// ValidateRegisterKey guards back-office endpoints with the shared
// register key from the environment.
func ValidateRegisterKey(c *gin.Context) {
	key := c.GetHeader("X-REGISTER-KEY")
	if key == "" || key != os.Getenv("REGISTER_API_KEY") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing register key"})
		c.Abort()
		return
	}
	c.Next()
}
