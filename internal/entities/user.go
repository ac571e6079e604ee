package entities

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type User struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Username        string            `json:"username"`
	Password        string            `json:"password"` // plaintext, as served by the remote API
	Role            UserRole          `json:"role"`
	PreferredGenres []string          `json:"preferredGenres"`
	Favorites       []int             `json:"favorites"`
	ReadLater       []int             `json:"readLater"`
	ReadBooks       []int             `json:"readBooks"`
	ReadingProgress []ReadingProgress `json:"readingProgress"`
	Ratings         []BookRating      `json:"ratings"`
	Stats           UserStats         `json:"stats"`
}

type UserStats struct {
	TotalBooksRead   int            `json:"totalBooksRead"`
	TotalPagesRead   int            `json:"totalPagesRead"`
	PagesReadByGenre map[string]int `json:"pagesReadByGenre"`
}

// ReadingProgress tracks one user's position in one book.
type ReadingProgress struct {
	BookID      int     `json:"bookId"`
	CurrentPage int     `json:"currentPage"`
	Progress    float64 `json:"progress"` // percent, 100 means finished
	StartDate   string  `json:"startDate"`
}

type BookRating struct {
	BookID int    `json:"bookId"`
	Rating int    `json:"rating"`
	Date   string `json:"date"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}

// Clone returns a deep copy so callers can't mutate store-owned slices.
func (u User) Clone() User {
	c := u
	c.PreferredGenres = cloneSlice(u.PreferredGenres)
	c.Favorites = cloneSlice(u.Favorites)
	c.ReadLater = cloneSlice(u.ReadLater)
	c.ReadBooks = cloneSlice(u.ReadBooks)
	c.ReadingProgress = cloneSlice(u.ReadingProgress)
	c.Ratings = cloneSlice(u.Ratings)
	if u.Stats.PagesReadByGenre != nil {
		c.Stats.PagesReadByGenre = make(map[string]int, len(u.Stats.PagesReadByGenre))
		for genre, pages := range u.Stats.PagesReadByGenre {
			c.Stats.PagesReadByGenre[genre] = pages
		}
	}
	return c
}

// ProgressFor returns the reading progress record for a book, if any.
func (u *User) ProgressFor(bookID int) (ReadingProgress, bool) {
	for _, p := range u.ReadingProgress {
		if p.BookID == bookID {
			return p, true
		}
	}
	return ReadingProgress{}, false
}

// RatingFor returns the user's rating for a book, if any.
func (u *User) RatingFor(bookID int) (BookRating, bool) {
	for _, r := range u.Ratings {
		if r.BookID == bookID {
			return r, true
		}
	}
	return BookRating{}, false
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
