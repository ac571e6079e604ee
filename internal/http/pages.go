package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/guard"
)

// PageResponse describes the page a navigation landed on.
type PageResponse struct {
	Name   string            `json:"name"`
	Path   string            `json:"path"`
	Params map[string]string `json:"params,omitempty"`
	Meta   guard.RouteMeta   `json:"meta"`
}

// pageHandler answers a navigation that passed the guard.
func pageHandler(route guard.Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params map[string]string
		if len(c.Params) > 0 {
			params = make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
		}
		c.JSON(http.StatusOK, PageResponse{
			Name:   route.Name,
			Path:   c.Request.URL.Path,
			Params: params,
			Meta:   route.Meta,
		})
	}
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, PageResponse{
		Name: guard.RouteNotFound,
		Path: c.Request.URL.Path,
	})
}
