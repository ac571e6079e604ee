package store

import (
	"context"
	"log"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// FetchUsers replaces the user list with the remote one.
// The logged-in user's local record is kept, since progress, ratings and stats
// only live on this side. Returns false and leaves the list unchanged on failure.
func (s *Store) FetchUsers(ctx context.Context) bool {
	users, err := s.api.FetchUsers(ctx)
	if err != nil {
		log.Printf("Store: failed to fetch users: %v", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if current := s.currentLocked(); current != nil {
		kept := current.Clone()
		replaced := false
		for i := range users {
			if users[i].ID == kept.ID {
				users[i] = kept
				replaced = true
				break
			}
		}
		if !replaced {
			users = append(users, kept)
		}
	}

	s.users = users
	s.persistLocked()
	return true
}

// Login authenticates against the remote API and installs the returned user as
// the current user. It never returns an error: any failure yields false and
// leaves the current user unchanged.
func (s *Store) Login(ctx context.Context, username, password string) bool {
	user, err := s.api.Login(ctx, username, password)
	if err != nil {
		log.Printf("Store: login failed for %q: %v", username, err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	normalizeUser(user)
	if i := s.indexOfUserLocked(user.ID); i >= 0 {
		s.users[i] = *user
	} else {
		s.users = append(s.users, *user)
	}
	s.currentID = user.ID
	s.loggedIn = true
	s.persistLocked()

	log.Printf("Store: logged in as %s (role=%s)", user.Username, user.Role)
	return true
}

// Logout clears the current user. Users and books are untouched.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loggedIn = false
	s.currentID = 0
	s.persistLocked()
}

// DeleteUser deletes a user remotely and then refetches the user list.
// Authorization is the caller's responsibility.
func (s *Store) DeleteUser(ctx context.Context, userID int) {
	if err := s.api.DeleteUser(ctx, userID); err != nil {
		log.Printf("Store: failed to delete user %d: %v", userID, err)
		return
	}
	s.FetchUsers(ctx)
}

// normalizeUser fills nil collections the remote API may omit.
func normalizeUser(u *entities.User) {
	if u.PreferredGenres == nil {
		u.PreferredGenres = []string{}
	}
	if u.Favorites == nil {
		u.Favorites = []int{}
	}
	if u.ReadLater == nil {
		u.ReadLater = []int{}
	}
	if u.ReadBooks == nil {
		u.ReadBooks = []int{}
	}
	if u.ReadingProgress == nil {
		u.ReadingProgress = []entities.ReadingProgress{}
	}
	if u.Ratings == nil {
		u.Ratings = []entities.BookRating{}
	}
	if u.Stats.PagesReadByGenre == nil {
		u.Stats.PagesReadByGenre = map[string]int{}
	}
}
