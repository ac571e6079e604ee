package guard

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKeyRoute holds the matched route metadata for downstream handlers.
const ContextKeyRoute = "guard_route_meta"

// Handler returns a gin middleware that looks up the matched path pattern in
// routes and enforces it. Unlisted paths pass through. API requests are
// answered with 401/403 JSON and skip the navigation delay; page requests wait
// for the delay and are redirected.
func (g *Guard) Handler(routes RouteTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		meta, ok := routes[c.FullPath()]
		if !ok {
			c.Next()
			return
		}
		c.Set(ContextKeyRoute, meta)

		if isAPIRequest(c) {
			decision := g.Check(meta)
			if decision.Proceed {
				c.Next()
				return
			}
			if decision.RedirectTo == RouteLogin {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "authentication required",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "insufficient permissions",
			})
			return
		}

		decision, err := g.Evaluate(c.Request.Context(), meta)
		if err != nil {
			// Client went away during the delay.
			c.Abort()
			return
		}
		if !decision.Proceed {
			c.Redirect(http.StatusFound, PathFor(decision.RedirectTo))
			c.Abort()
			return
		}
		c.Next()
	}
}

// isAPIRequest determines if this is an API request vs a page navigation.
func isAPIRequest(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json") &&
		!strings.Contains(c.GetHeader("Accept"), "text/html")
}
