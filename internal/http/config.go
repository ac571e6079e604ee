package http

import (
	"github.com/mrlokans/bookshelf/internal/demo"
	"github.com/mrlokans/bookshelf/internal/guard"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Store       LibraryStore
	Preferences PreferencesStore
	Guard       *guard.Guard

	// Health checks, optional
	Database   Pinger
	Navigation NavigationStatus

	// Login attempt throttling, optional
	LoginLimiter *guard.LoginLimiter

	// CSRF protection is enabled when the secret is set
	CSRFSecret    []byte
	SecureCookies bool

	// CORS is enabled when origins are listed
	AllowedOrigins []string

	DemoMiddleware *demo.Middleware

	// Local cover image cache, optional
	CoverCache CoverCache

	// Users sync status and manual runs, optional
	UsersSync         UsersSyncRunner
	UsersSyncSettings UsersSyncSettings

	// Application info
	Version string
}
