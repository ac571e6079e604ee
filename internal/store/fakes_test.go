package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

var errUnavailable = errors.New("connection refused")

// fakeAPI is an in-memory stand-in for the remote library API.
type fakeAPI struct {
	mu sync.Mutex

	users    []entities.User
	usersErr error

	accounts map[string]entities.User // "username:password" -> user
	loginErr error

	comments    map[int][]entities.Comment
	commentsErr error
	addErr      error
	deleteErr   error

	added           []entities.Comment
	deletedComments []int64
	deletedUsers    []int
	commentFetches  int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		accounts: map[string]entities.User{},
		comments: map[int][]entities.Comment{},
	}
}

func (f *fakeAPI) addAccount(u entities.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[u.Username+":"+u.Password] = u
}

func (f *fakeAPI) FetchUsers(ctx context.Context) ([]entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	out := make([]entities.User, len(f.users))
	for i, u := range f.users {
		out[i] = u.Clone()
	}
	return out, nil
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	u, ok := f.accounts[username+":"+password]
	if !ok {
		return nil, errors.New("invalid username or password")
	}
	c := u.Clone()
	return &c, nil
}

func (f *fakeAPI) GetComments(ctx context.Context, bookID int) ([]entities.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commentFetches++
	if f.commentsErr != nil {
		return nil, f.commentsErr
	}
	return append([]entities.Comment(nil), f.comments[bookID]...), nil
}

func (f *fakeAPI) AddComment(ctx context.Context, comment entities.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, comment)
	f.comments[comment.BookID] = append(f.comments[comment.BookID], comment)
	return nil
}

func (f *fakeAPI) DeleteComment(ctx context.Context, commentID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedComments = append(f.deletedComments, commentID)
	for bookID, list := range f.comments {
		kept := list[:0]
		for _, c := range list {
			if c.ID != commentID {
				kept = append(kept, c)
			}
		}
		f.comments[bookID] = kept
	}
	return nil
}

func (f *fakeAPI) DeleteUser(ctx context.Context, userID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedUsers = append(f.deletedUsers, userID)
	kept := f.users[:0]
	for _, u := range f.users {
		if u.ID != userID {
			kept = append(kept, u)
		}
	}
	f.users = kept
	return nil
}

// memoryState keeps snapshots in a map.
type memoryState struct {
	mu    sync.Mutex
	data  map[string][]byte
	saves int
}

func newMemoryState() *memoryState {
	return &memoryState{data: map[string][]byte{}}
}

func (m *memoryState) LoadState(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, database.ErrStateNotFound
	}
	return data, nil
}

func (m *memoryState) SaveState(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	m.saves++
	return nil
}

// staticSeeder returns fixed users and books.
type staticSeeder struct {
	users []entities.User
	books []entities.Book
}

func (s staticSeeder) GenerateUsers() []entities.User { return s.users }
func (s staticSeeder) GenerateBooks() []entities.Book { return s.books }

var fixedNow = time.Date(2024, 6, 20, 14, 20, 0, 0, time.UTC)

func testUser(id int, username string, role entities.UserRole) entities.User {
	return entities.User{
		ID:              id,
		Name:            "User " + username,
		Username:        username,
		Password:        "password",
		Role:            role,
		PreferredGenres: []string{},
		Favorites:       []int{},
		ReadLater:       []int{},
		ReadBooks:       []int{},
		ReadingProgress: []entities.ReadingProgress{},
		Ratings:         []entities.BookRating{},
		Stats:           entities.UserStats{PagesReadByGenre: map[string]int{}},
	}
}

func testBook(id int, pages int, genres ...string) entities.Book {
	return entities.Book{
		ID:        id,
		Title:     "Book",
		Author:    "Author",
		PageCount: pages,
		Genres:    genres,
		Comments:  []entities.Comment{},
	}
}

// newTestStore builds a store seeded with users and books, with every user
// registered as a remote account.
func newTestStore(t *testing.T, users []entities.User, books []entities.Book) (*Store, *fakeAPI, *memoryState) {
	t.Helper()
	api := newFakeAPI()
	seeded := make([]entities.User, len(users))
	for i, u := range users {
		api.users = append(api.users, u.Clone())
		api.addAccount(u)
		seeded[i] = u.Clone()
	}
	state := newMemoryState()
	s := New(api, state, WithClock(func() time.Time { return fixedNow }))
	s.Initialize(staticSeeder{users: seeded, books: cloneBooks(books)})
	return s, api, state
}

func loginAs(t *testing.T, s *Store, u entities.User) {
	t.Helper()
	require.True(t, s.Login(context.Background(), u.Username, u.Password))
}

// requireMirrored asserts the current user equals its entry in the user list.
func requireMirrored(t require.TestingT, s *Store) {
	current, ok := s.CurrentUser()
	if !ok {
		return
	}
	for _, u := range s.Users() {
		if u.ID == current.ID {
			require.Equal(t, current, u)
			return
		}
	}
	require.Fail(t, "current user missing from user list")
}
