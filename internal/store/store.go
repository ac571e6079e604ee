// Package store holds the session and catalog state of the library client.
//
// The store is the single in-memory owner of the user list and the book catalog.
// The logged-in user is an index into the user list rather than a copy, so every
// change made through the store is immediately visible both via CurrentUser and
// via Users. Network failures are logged and swallowed; callers only observe the
// absence of a state change.
//
// # Usage
//
//	s := store.New(api.NewClient(baseURL), database.NewStateStore(db, nil))
//	if err := s.Restore(); err != nil { ... }
//	if s.Login(ctx, "admin", "admin") {
//		s.ToggleFavorite(3)
//	}
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// StateKey is the key the store snapshot is persisted under.
const StateKey = entities.SettingKeyUserStore

// isoMillis matches the millisecond ISO-8601 timestamps the remote API emits.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// RemoteAPI is the subset of the library API the store depends on.
type RemoteAPI interface {
	FetchUsers(ctx context.Context) ([]entities.User, error)
	Login(ctx context.Context, username, password string) (*entities.User, error)
	GetComments(ctx context.Context, bookID int) ([]entities.Comment, error)
	AddComment(ctx context.Context, comment entities.Comment) error
	DeleteComment(ctx context.Context, commentID int64) error
	DeleteUser(ctx context.Context, userID int) error
}

// StateRepository persists opaque snapshots by key.
type StateRepository interface {
	LoadState(key string) ([]byte, error)
	SaveState(key string, data []byte) error
}

// Seeder produces initial users and books when nothing else is available.
type Seeder interface {
	GenerateUsers() []entities.User
	GenerateBooks() []entities.Book
}

// Store is safe for concurrent use. Remote calls run without holding the lock,
// so two concurrent mutations interleave only at their network round-trips.
type Store struct {
	api   RemoteAPI
	state StateRepository
	now   func() time.Time

	mu          sync.RWMutex
	users       []entities.User
	books       []entities.Book
	currentID   int
	loggedIn    bool
	initialized bool
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store. state may be nil to disable persistence.
func New(api RemoteAPI, state StateRepository, opts ...Option) *Store {
	s := &Store{
		api:   api,
		state: state,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// snapshot is the persisted form of the store.
type snapshot struct {
	CurrentUserID *int            `json:"currentUserId"`
	Users         []entities.User `json:"users"`
	Books         []entities.Book `json:"books"`
	IsInitialized bool            `json:"isInitialized"`
}

// Restore loads the last persisted snapshot, if any.
func (s *Store) Restore() error {
	if s.state == nil {
		return nil
	}

	data, err := s.state.LoadState(StateKey)
	if err != nil {
		if database.IsStateNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to restore store: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to decode store snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = snap.Users
	s.books = snap.Books
	s.initialized = snap.IsInitialized
	s.loggedIn = false
	s.currentID = 0
	if snap.CurrentUserID != nil && s.indexOfUserLocked(*snap.CurrentUserID) >= 0 {
		s.currentID = *snap.CurrentUserID
		s.loggedIn = true
	}

	log.Printf("Store: restored %d users and %d books", len(s.users), len(s.books))
	return nil
}

// persistLocked writes the snapshot. Callers must hold the write lock.
func (s *Store) persistLocked() {
	if s.state == nil {
		return
	}

	snap := snapshot{
		Users:         s.users,
		Books:         s.books,
		IsInitialized: s.initialized,
	}
	if s.loggedIn {
		id := s.currentID
		snap.CurrentUserID = &id
	}

	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("Store: failed to encode snapshot: %v", err)
		return
	}
	if err := s.state.SaveState(StateKey, data); err != nil {
		log.Printf("Store: failed to persist snapshot: %v", err)
	}
}

// Initialize seeds users and books from seeder once per store lifetime.
func (s *Store) Initialize(seeder Seeder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return
	}
	s.users = seeder.GenerateUsers()
	s.books = seeder.GenerateBooks()
	s.initialized = true
	s.persistLocked()

	log.Printf("Store: seeded %d users and %d books", len(s.users), len(s.books))
}

// IsInitialized reports whether Initialize has populated the store.
func (s *Store) IsInitialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// IsLoggedIn reports whether a user is logged in.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentLocked() != nil
}

// IsAdmin reports whether the logged-in user is an administrator.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentLocked().IsAdmin()
}

// CurrentUser returns a copy of the logged-in user.
func (s *Store) CurrentUser() (entities.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.currentLocked()
	if u == nil {
		return entities.User{}, false
	}
	return u.Clone(), true
}

// Users returns a copy of the full user list.
func (s *Store) Users() []entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Clone()
	}
	return out
}

// Books returns a copy of the catalog.
func (s *Store) Books() []entities.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneBooks(s.books)
}

// Book returns a copy of one catalog entry.
func (s *Store) Book(bookID int) (entities.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOfBookLocked(bookID)
	if i < 0 {
		return entities.Book{}, false
	}
	return s.books[i].Clone(), true
}

// FavoriteBooks returns catalog entries in the current user's favorites.
func (s *Store) FavoriteBooks() []entities.Book {
	return s.booksIn(func(u *entities.User) []int { return u.Favorites })
}

// ReadLaterBooks returns catalog entries the current user saved for later.
func (s *Store) ReadLaterBooks() []entities.Book {
	return s.booksIn(func(u *entities.User) []int { return u.ReadLater })
}

// ReadBooks returns catalog entries the current user has finished.
func (s *Store) ReadBooks() []entities.Book {
	return s.booksIn(func(u *entities.User) []int { return u.ReadBooks })
}

func (s *Store) booksIn(ids func(u *entities.User) []int) []entities.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.currentLocked()
	if u == nil || len(ids(u)) == 0 {
		return []entities.Book{}
	}

	set := make(map[int]struct{}, len(ids(u)))
	for _, id := range ids(u) {
		set[id] = struct{}{}
	}

	out := []entities.Book{}
	for _, b := range s.books {
		if _, ok := set[b.ID]; ok {
			out = append(out, b.Clone())
		}
	}
	return out
}

// currentLocked returns a pointer into s.users for the logged-in user, or nil.
func (s *Store) currentLocked() *entities.User {
	if !s.loggedIn {
		return nil
	}
	i := s.indexOfUserLocked(s.currentID)
	if i < 0 {
		return nil
	}
	return &s.users[i]
}

func (s *Store) indexOfUserLocked(userID int) int {
	for i := range s.users {
		if s.users[i].ID == userID {
			return i
		}
	}
	return -1
}

func (s *Store) indexOfBookLocked(bookID int) int {
	for i := range s.books {
		if s.books[i].ID == bookID {
			return i
		}
	}
	return -1
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(isoMillis)
}

func cloneBooks(books []entities.Book) []entities.Book {
	out := make([]entities.Book, len(books))
	for i, b := range books {
		out[i] = b.Clone()
	}
	return out
}
