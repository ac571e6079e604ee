package http

import (
	"context"
	"time"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/preferences"
	"github.com/mrlokans/bookshelf/internal/settingsstore"
)

// SessionStore covers login state.
type SessionStore interface {
	Login(ctx context.Context, username, password string) bool
	Logout()
	IsLoggedIn() bool
	IsAdmin() bool
	CurrentUser() (entities.User, bool)
}

// CatalogStore covers books, comments and the catalog admin operations.
type CatalogStore interface {
	Books() []entities.Book
	Book(bookID int) (entities.Book, bool)
	GetComments(ctx context.Context, bookID int)
	AddComment(ctx context.Context, bookID int, text string)
	DeleteComment(ctx context.Context, bookID int, commentID int64)
	AddBook(book entities.Book) (entities.Book, bool)
	DeleteBook(bookID int) bool
}

// ReadingStore covers the current user's lists, progress and profile.
type ReadingStore interface {
	FavoriteBooks() []entities.Book
	ReadLaterBooks() []entities.Book
	ReadBooks() []entities.Book
	ToggleFavorite(bookID int)
	ToggleReadLater(bookID int)
	UpdateReadingProgress(bookID, page, totalPages int)
	RateBook(bookID, rating int)
	UpdateUserName(name string)
	UpdatePreferredGenres(genres []string)
}

// UserAdminStore covers the user list.
type UserAdminStore interface {
	Users() []entities.User
	FetchUsers(ctx context.Context) bool
	DeleteUser(ctx context.Context, userID int)
}

// LibrarySummary is what the health check reports about the store.
type LibrarySummary interface {
	IsInitialized() bool
	Users() []entities.User
	Books() []entities.Book
}

// LibraryStore combines all store interfaces. *store.Store satisfies it.
type LibraryStore interface {
	SessionStore
	CatalogStore
	ReadingStore
	UserAdminStore
	LibrarySummary
}

// PreferencesStore is satisfied by *preferences.Store.
type PreferencesStore interface {
	Theme() preferences.Theme
	SetDarkMode(dark bool)
	ToggleDarkMode()
	ChangeReaderFontSize(size int)
	ChangeReaderLineHeight(height float64)
	ChangeReaderFontFamily(family string)
}

// Pinger reports storage connectivity. *database.Database satisfies it.
type Pinger interface {
	Ping() error
}

// NavigationStatus is satisfied by *guard.NavigationTracker.
type NavigationStatus interface {
	IsLoading() bool
	InFlight() int64
	Total() int64
}

// CoverCache is satisfied by *covers.Cache.
type CoverCache interface {
	GetCover(ctx context.Context, bookID int, coverURL string) (string, error)
	InvalidateCover(bookID int) error
}

// UsersSyncRunner is satisfied by *scheduler.UsersSyncScheduler.
type UsersSyncRunner interface {
	RunNow(ctx context.Context) bool
	IsRunning() bool
	GetNextRunTime() *time.Time
}

// UsersSyncSettings is satisfied by *settingsstore.SettingsStore.
type UsersSyncSettings interface {
	GetUsersSyncConfigInfo() settingsstore.UsersSyncConfigInfo
	GetUsersSyncStatus() settingsstore.UsersSyncStatus
}
