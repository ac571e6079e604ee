package demo

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextKeyDemoMode holds the demo flag for downstream handlers.
const ContextKeyDemoMode = "demo_mode"

// Middleware blocks write operations in demo mode.
// Read-only methods are always allowed, and so is signing in and out.
type Middleware struct {
	enabled bool
	allowed map[string]bool
}

func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{
		enabled: enabled,
		allowed: map[string]bool{
			"/api/login":  true,
			"/api/logout": true,
		},
	}
}

func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyDemoMode, m.enabled)

		if !m.enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if m.allowed[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     "This action is disabled in demo mode",
			"demo_mode": true,
		})
	}
}
