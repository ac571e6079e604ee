package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/api"
	"github.com/mrlokans/bookshelf/internal/covers"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/demo"
	"github.com/mrlokans/bookshelf/internal/guard"
	"github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/preferences"
	"github.com/mrlokans/bookshelf/internal/scheduler"
	"github.com/mrlokans/bookshelf/internal/settingsstore"
	"github.com/mrlokans/bookshelf/internal/store"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ store.StateRepository = (*database.StateStore)(nil)
var _ preferences.SettingsRepository = (*database.Database)(nil)
var _ settingsstore.Repository = (*database.Database)(nil)
var _ http.Pinger = (*database.Database)(nil)
var _ guard.LoadingIndicator = (*guard.NavigationTracker)(nil)
var _ http.NavigationStatus = (*guard.NavigationTracker)(nil)

// =============================================================================
// Domain Stores
// =============================================================================

var _ http.LibraryStore = (*store.Store)(nil)
var _ guard.Session = (*store.Store)(nil)
var _ scheduler.UserFetcher = (*store.Store)(nil)
var _ http.PreferencesStore = (*preferences.Store)(nil)
var _ store.Seeder = (*demo.Generator)(nil)

// =============================================================================
// External Services
// =============================================================================

var _ store.RemoteAPI = (*api.Client)(nil)
var _ http.CoverCache = (*covers.Cache)(nil)
var _ preferences.Prober = (*preferences.GSettings)(nil)
var _ preferences.ColorSchemeSource = (*preferences.PollingWatcher)(nil)

// =============================================================================
// Background Jobs
// =============================================================================

var _ http.UsersSyncRunner = (*scheduler.UsersSyncScheduler)(nil)
var _ http.UsersSyncSettings = (*settingsstore.SettingsStore)(nil)
