package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/guard"
)

var (
	authRequired  = guard.RouteMeta{RequiresAuth: true}
	adminRequired = guard.RouteMeta{RequiresAuth: true, RequiresAdmin: true}
)

// apiRoutes lists the protected API patterns. Anything absent is public.
var apiRoutes = guard.RouteTable{
	"/api/books/:id/comments":            authRequired,
	"/api/books/:id/comments/:commentId": authRequired,
	"/api/books/:id/favorite":            authRequired,
	"/api/books/:id/read-later":          authRequired,
	"/api/books/:id/progress":            authRequired,
	"/api/books/:id/rating":              authRequired,
	"/api/books/:id/pages/:page":         authRequired,
	"/api/me/favorites":                  authRequired,
	"/api/me/read-later":                 authRequired,
	"/api/me/read":                       authRequired,
	"/api/me/name":                       authRequired,
	"/api/me/genres":                     authRequired,
	"/api/users":                         adminRequired,
	"/api/users/refresh":                 adminRequired,
	"/api/users/sync":                    adminRequired,
	"/api/users/:id":                     adminRequired,
}

// adminBookRoutes guards the catalog writes that share paths with public reads.
var adminBookRoutes = guard.RouteTable{
	"/api/books":     adminRequired,
	"/api/books/:id": adminRequired,
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(guard.SecurityHeadersMiddleware())

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", guard.CSRFTokenHeader, RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", guard.CSRFTokenHeader, RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	if len(cfg.CSRFSecret) > 0 {
		router.Use(guard.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	if cfg.DemoMiddleware != nil && cfg.DemoMiddleware.IsEnabled() {
		router.Use(cfg.DemoMiddleware.Handler())
	}

	pages := guard.PageRoutes()
	router.Use(cfg.Guard.Handler(guard.Table(pages).Merge(apiRoutes)))

	health := NewHealthController(cfg.Database, cfg.Store, cfg.Navigation, cfg.Version)
	session := NewSessionController(cfg.Store, cfg.LoginLimiter)
	books := NewBooksController(cfg.Store, cfg.Store, cfg.CoverCache)
	reading := NewReadingController(cfg.Store, cfg.Store, cfg.Store)
	users := NewUsersController(cfg.Store, cfg.Store, cfg.UsersSync, cfg.UsersSyncSettings)
	prefs := NewPreferencesController(cfg.Preferences)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Session
	router.POST("/api/login", session.Login)
	router.POST("/api/logout", session.Logout)
	router.GET("/api/session", session.Session)

	// Catalog
	router.GET("/api/books", books.GetAllBooks)
	router.GET("/api/books/:id", books.GetBook)
	router.GET("/api/books/:id/pages/:page", books.GetPage)
	router.GET("/api/books/:id/cover", books.GetCover)
	router.GET("/api/books/:id/comments", books.GetComments)
	router.POST("/api/books/:id/comments", books.AddComment)
	router.DELETE("/api/books/:id/comments/:commentId", books.DeleteComment)

	// Reading
	router.POST("/api/books/:id/favorite", reading.ToggleFavorite)
	router.POST("/api/books/:id/read-later", reading.ToggleReadLater)
	router.POST("/api/books/:id/progress", reading.UpdateProgress)
	router.POST("/api/books/:id/rating", reading.RateBook)
	router.GET("/api/me/favorites", reading.Favorites)
	router.GET("/api/me/read-later", reading.ReadLater)
	router.GET("/api/me/read", reading.Read)
	router.PATCH("/api/me/name", reading.UpdateName)
	router.PUT("/api/me/genres", reading.UpdateGenres)

	// Preferences
	router.GET("/api/preferences", prefs.Get)
	router.PATCH("/api/preferences", prefs.Update)

	// Admin
	adminOnly := cfg.Guard.Handler(adminBookRoutes)
	router.POST("/api/books", adminOnly, books.CreateBook)
	router.DELETE("/api/books/:id", adminOnly, books.DeleteBook)
	router.GET("/api/users", users.List)
	router.POST("/api/users/refresh", users.Refresh)
	router.GET("/api/users/sync", users.SyncStatus)
	router.DELETE("/api/users/:id", users.Delete)

	// Pages
	for _, route := range pages {
		router.GET(route.Path, pageHandler(route))
	}
	router.NoRoute(notFound)

	return router
}
