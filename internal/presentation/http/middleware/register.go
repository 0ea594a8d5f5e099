package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// registerHeader names the cashier register a request belongs to. Each
// register owns exactly one live cart.
const registerHeader = "X-Register-ID"

// DefaultRegisterID is used when a client does not identify its register.
const DefaultRegisterID = "main"

const registerContextKey = "register_id"

// RegisterMiddleware resolves the register id for the request and stores it
// in the Gin context.
func RegisterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		registerID := strings.TrimSpace(c.GetHeader(registerHeader))
		if registerID == "" {
			registerID = DefaultRegisterID
		}
		c.Set(registerContextKey, registerID)
		c.Next()
	}
}

// RegisterID returns the register id resolved for this request.
func RegisterID(c *gin.Context) string {
	if id := c.GetString(registerContextKey); id != "" {
		return id
	}
	return DefaultRegisterID
}
