package demo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newDemoRouter(enabled bool) *gin.Engine {
	m := NewMiddleware(enabled)
	router := gin.New()
	router.Use(m.Handler())
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"demo": c.GetBool(ContextKeyDemoMode)})
	}
	router.Handle(http.MethodGet, "/api/books", handler)
	router.Handle(http.MethodHead, "/api/books", handler)
	router.Handle(http.MethodOptions, "/api/books", handler)
	router.POST("/api/books/:id/favorite", handler)
	router.PATCH("/api/me/name", handler)
	router.DELETE("/api/users/:id", handler)
	router.POST("/api/login", handler)
	router.POST("/api/logout", handler)
	return router
}

func TestNewMiddleware(t *testing.T) {
	assert.True(t, NewMiddleware(true).IsEnabled())
	assert.False(t, NewMiddleware(false).IsEnabled())
}

func TestMiddleware_Enabled(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/books", http.StatusOK},
		{http.MethodHead, "/api/books", http.StatusOK},
		{http.MethodOptions, "/api/books", http.StatusOK},
		{http.MethodPost, "/api/login", http.StatusOK},
		{http.MethodPost, "/api/logout", http.StatusOK},
		{http.MethodPost, "/api/books/3/favorite", http.StatusForbidden},
		{http.MethodPatch, "/api/me/name", http.StatusForbidden},
		{http.MethodDelete, "/api/users/2", http.StatusForbidden},
	}

	router := newDemoRouter(true)
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), "disabled in demo mode")
			}
		})
	}
}

func TestMiddleware_DisabledAllowsAllRequests(t *testing.T) {
	router := newDemoRouter(false)
	for _, method := range []string{http.MethodPost, http.MethodPatch} {
		path := "/api/books/3/favorite"
		if method == http.MethodPatch {
			path = "/api/me/name"
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"demo":false}`, w.Body.String())
	}
}

func TestMiddleware_SetsContextFlag(t *testing.T) {
	router := newDemoRouter(true)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))
	assert.JSONEq(t, `{"demo":true}`, w.Body.String())
}
