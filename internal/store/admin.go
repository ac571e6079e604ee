package store

import (
	"log"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// AddBook appends a book to the local catalog. Only administrators may add books;
// the new ID is one past the largest existing ID. The catalog is not persisted
// remotely.
func (s *Store) AddBook(book entities.Book) (entities.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.currentLocked().IsAdmin() {
		return entities.Book{}, false
	}

	maxID := 0
	for _, b := range s.books {
		if b.ID > maxID {
			maxID = b.ID
		}
	}

	added := book.Clone()
	added.ID = maxID + 1
	added.Comments = []entities.Comment{}
	added.Rating = 0
	added.RatingsCount = 0
	if added.Genres == nil {
		added.Genres = []string{}
	}

	s.books = append(s.books, added)
	s.persistLocked()

	log.Printf("Store: added book %d %q", added.ID, added.Title)
	return added.Clone(), true
}

// DeleteBook removes a book from the local catalog. Only administrators may
// delete books. Returns false when nothing was removed.
func (s *Store) DeleteBook(bookID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.currentLocked().IsAdmin() {
		return false
	}

	i := s.indexOfBookLocked(bookID)
	if i < 0 {
		return false
	}
	s.books = append(s.books[:i], s.books[i+1:]...)
	s.persistLocked()
	return true
}
