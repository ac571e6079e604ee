// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - store.StateRepository: snapshot load/save (internal/database/state.go)
//   - preferences.SettingsRepository: theme.* settings rows (internal/database)
//   - settingsstore.Repository: users sync overrides and status (internal/database)
//
// ## Domain Interfaces
//
//   - http.LibraryStore: everything the HTTP surface needs from the store,
//     split into SessionStore, CatalogStore, ReadingStore and UserAdminStore
//   - guard.Session: login state the navigation guard checks
//   - store.Seeder: initial users and books (internal/demo)
//
// ## External Service Interfaces
//
//   - store.RemoteAPI: users, login and comments (internal/api)
//   - preferences.ColorSchemeSource: desktop dark-mode preference
//   - http.CoverCache: local cover image cache (internal/covers)
//
// # Adding a New Colour Scheme Source
//
// To follow a platform other than GNOME:
//
//  1. Implement Prober in internal/preferences/
//
//     type PortalSettings struct{}
//
//     func (p *PortalSettings) PrefersDark(ctx context.Context) (bool, error)
//
//     var _ Prober = (*PortalSettings)(nil)
//
//  2. Wrap it in a PollingWatcher in entrypoint.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
