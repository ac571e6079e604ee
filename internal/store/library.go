package store

import (
	"math"

	"github.com/mrlokans/bookshelf/internal/entities"
)

const (
	minRating = 1
	maxRating = 5
)

// UpdateUserName renames the current user. No-op when logged out.
func (s *Store) UpdateUserName(name string) {
	s.mutateCurrent(func(u *entities.User) {
		u.Name = name
	})
}

// UpdatePreferredGenres replaces the current user's preferred genres.
func (s *Store) UpdatePreferredGenres(genres []string) {
	copied := append([]string{}, genres...)
	s.mutateCurrent(func(u *entities.User) {
		u.PreferredGenres = copied
	})
}

// ToggleFavorite adds bookID to favorites, or removes it if already present.
func (s *Store) ToggleFavorite(bookID int) {
	s.mutateCurrent(func(u *entities.User) {
		u.Favorites = toggleID(u.Favorites, bookID)
	})
}

// ToggleReadLater adds bookID to read-later, or removes it if already present.
func (s *Store) ToggleReadLater(bookID int) {
	s.mutateCurrent(func(u *entities.User) {
		u.ReadLater = toggleID(u.ReadLater, bookID)
	})
}

// UpdateReadingProgress records that the current user is on page of totalPages.
// Reaching 100% marks the book as read. Each call counts one page read overall
// and one per genre of the book.
func (s *Store) UpdateReadingProgress(bookID, page, totalPages int) {
	if totalPages <= 0 {
		return
	}
	progress := float64(page) / float64(totalPages) * 100

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentLocked()
	if u == nil {
		return
	}

	updated := false
	for i := range u.ReadingProgress {
		if u.ReadingProgress[i].BookID == bookID {
			u.ReadingProgress[i].CurrentPage = page
			u.ReadingProgress[i].Progress = progress
			updated = true
			break
		}
	}
	if !updated {
		u.ReadingProgress = append(u.ReadingProgress, entities.ReadingProgress{
			BookID:      bookID,
			CurrentPage: page,
			Progress:    progress,
			StartDate:   s.timestamp(),
		})
	}

	if progress >= 100 && !containsID(u.ReadBooks, bookID) {
		u.ReadBooks = append(u.ReadBooks, bookID)
	}

	if i := s.indexOfBookLocked(bookID); i >= 0 {
		u.Stats.TotalPagesRead++
		if u.Stats.PagesReadByGenre == nil {
			u.Stats.PagesReadByGenre = map[string]int{}
		}
		for _, genre := range s.books[i].Genres {
			u.Stats.PagesReadByGenre[genre]++
		}
	}

	s.persistLocked()
}

// RateBook sets the current user's rating for a book and recomputes the book's
// aggregate as the mean of every user's rating, rounded to one decimal.
// Ratings outside 1..5 are ignored.
func (s *Store) RateBook(bookID, rating int) {
	if rating < minRating || rating > maxRating {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentLocked()
	if u == nil {
		return
	}

	updated := false
	for i := range u.Ratings {
		if u.Ratings[i].BookID == bookID {
			u.Ratings[i].Rating = rating
			updated = true
			break
		}
	}
	if !updated {
		u.Ratings = append(u.Ratings, entities.BookRating{
			BookID: bookID,
			Rating: rating,
			Date:   s.timestamp(),
		})
	}

	if i := s.indexOfBookLocked(bookID); i >= 0 {
		sum, count := 0, 0
		for _, other := range s.users {
			for _, r := range other.Ratings {
				if r.BookID == bookID {
					sum += r.Rating
					count++
				}
			}
		}
		s.books[i].Rating = roundToTenth(float64(sum) / float64(count))
		s.books[i].RatingsCount = count
	}

	s.persistLocked()
}

// mutateCurrent applies fn to the logged-in user and persists. No-op when logged out.
func (s *Store) mutateCurrent(fn func(u *entities.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentLocked()
	if u == nil {
		return
	}
	fn(u)
	s.persistLocked()
}

func toggleID(ids []int, id int) []int {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}

func containsID(ids []int, id int) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
