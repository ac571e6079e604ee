package store

import (
	"context"
	"log"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// GetComments fetches a book's comments and replaces its cached list.
// Errors are logged, not surfaced.
func (s *Store) GetComments(ctx context.Context, bookID int) {
	comments, err := s.api.GetComments(ctx, bookID)
	if err != nil {
		log.Printf("Store: failed to fetch comments for book %d: %v", bookID, err)
		return
	}
	if comments == nil {
		comments = []entities.Comment{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfBookLocked(bookID)
	if i < 0 {
		return
	}
	s.books[i].Comments = comments
	s.persistLocked()
}

// AddComment posts a comment as the current user, then refetches the book's
// comments. No-op when logged out.
func (s *Store) AddComment(ctx context.Context, bookID int, text string) {
	s.mu.RLock()
	u := s.currentLocked()
	if u == nil {
		s.mu.RUnlock()
		return
	}
	now := s.now()
	comment := entities.Comment{
		ID:     now.UnixMilli(),
		BookID: bookID,
		UserID: u.ID,
		Author: u.Name,
		Text:   text,
		Date:   now.UTC().Format(isoMillis),
	}
	s.mu.RUnlock()

	if err := s.api.AddComment(ctx, comment); err != nil {
		log.Printf("Store: failed to add comment to book %d: %v", bookID, err)
		return
	}
	s.GetComments(ctx, bookID)
}

// DeleteComment deletes a comment remotely, then refetches the book's comments.
// Authorization is the caller's responsibility.
func (s *Store) DeleteComment(ctx context.Context, bookID int, commentID int64) {
	if err := s.api.DeleteComment(ctx, commentID); err != nil {
		log.Printf("Store: failed to delete comment %d: %v", commentID, err)
		return
	}
	s.GetComments(ctx, bookID)
}
